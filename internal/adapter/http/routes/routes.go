package routes

import (
	"context"
	"net/http"
	"time"

	_ "fieldops_completion/docs" // This will be auto-generated
	"fieldops_completion/internal/adapter/http/handlers"
	"fieldops_completion/internal/adapter/persistence/memory"
	"fieldops_completion/internal/adapter/persistence/repository"
	"fieldops_completion/internal/infrastructure/config"
	"fieldops_completion/internal/infrastructure/database"
	"fieldops_completion/internal/infrastructure/legacy"
	"fieldops_completion/internal/infrastructure/logging"
	"fieldops_completion/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logging.Initialize("info", logging.FormatJSON)
		zap.S().Fatalf("Failed to load configuration: %v", err)
	}
	logging.Initialize(cfg.LogLevel, cfg.LogFormat)
	log := logging.For("server")

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := getRoutes(cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	log.Infow("[server] listening", "port", cfg.Port, "legacy_mock", cfg.Legacy.Mock, "policy_sources", cfg.PolicySources)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	if database.IsLocal() {
		if err := database.EnsureTable(ctx, ddb, cfg.DraftsTable, repository.DraftHashKey, logging.For("database")); err != nil {
			return err
		}
	}

	gateway, err := legacy.NewClient(cfg.Legacy, cfg.Policy.CertifiedOfficeCodeGroup, logging.For("legacy"))
	if err != nil {
		return err
	}

	clock := usecase.NewClock(cfg.Location)
	sessions := usecase.NewSessionRegistry(cfg.TombstoneTTL)
	store := memory.NewEquipmentStore(logging.For("equipment"))
	drafts := repository.NewDraftDynamoRepository(ddb, cfg.DraftsTable)

	hotbillUseCase := usecase.NewHotbillUseCase(sessions, gateway, cfg.Policy, logging.For("hotbill"))
	workOrderUseCase := usecase.NewWorkOrderUseCase(sessions, store, hotbillUseCase, gateway, cfg.Policy, clock, logging.For("work_order"))
	equipmentUseCase := usecase.NewEquipmentUseCase(store, sessions)
	draftUseCase := usecase.NewDraftUseCase(drafts, sessions, clock)
	removalLineUseCase := usecase.NewRemovalLineUseCase(sessions, clock, logging.For("removal_line"))
	certificationUseCase := usecase.NewCertificationUseCase(gateway, cfg.Policy, logging.For("certification"))
	signalUseCase := usecase.NewSignalUseCase(gateway, cfg.Policy, clock, logging.For("signal"))
	completionUseCase := usecase.NewCompletionUseCase(
		sessions, store, drafts, gateway, certificationUseCase, signalUseCase, cfg.Policy, clock, logging.For("completion"),
	)

	h := workOrderHandlers{
		workOrder:   handlers.NewWorkOrderHandler(workOrderUseCase),
		equipment:   handlers.NewEquipmentHandler(equipmentUseCase),
		draft:       handlers.NewDraftHandler(draftUseCase),
		hotbill:     handlers.NewHotbillHandler(hotbillUseCase),
		removalLine: handlers.NewRemovalLineHandler(removalLineUseCase),
		completion:  handlers.NewCompletionHandler(completionUseCase, logging.For("completion")),
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, h)
	addEquipmentHistoryRoutes(v1, h.workOrder)
	return nil
}

func setMiddlewares(log *zap.SugaredLogger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("[server] recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("[server] request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
