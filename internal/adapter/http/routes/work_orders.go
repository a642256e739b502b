package routes

import (
	"fieldops_completion/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders       = "/work-orders"
	PathEquipmentHistory = "/equipment/history"
)

type workOrderHandlers struct {
	workOrder   *handlers.WorkOrderHandler
	equipment   *handlers.EquipmentHandler
	draft       *handlers.DraftHandler
	hotbill     *handlers.HotbillHandler
	removalLine *handlers.RemovalLineHandler
	completion  *handlers.CompletionHandler
}

func addWorkOrderRoutes(rg *gin.RouterGroup, h workOrderHandlers) {
	wo := rg.Group(PathWorkOrders + "/:id")
	{
		wo.POST("/open", h.workOrder.Open)
		wo.GET("", h.workOrder.Get)
		wo.PUT("/suspension", h.workOrder.StageSuspension)
		wo.POST("/validate", h.completion.Validate)
		wo.POST("/complete", h.completion.Complete)
	}

	equipment := wo.Group("/equipment")
	{
		equipment.GET("", h.equipment.Get)
		equipment.PUT("", h.equipment.SetApiData)
		equipment.POST("/installed", h.equipment.AddInstalled)
		equipment.DELETE("/installed/:contract_id", h.equipment.RemoveInstalled)
		equipment.POST("/removal/:item_id", h.equipment.MarkForRemoval)
		equipment.DELETE("/removal/:item_id", h.equipment.Unmark)
		equipment.PATCH("/:item_id/loss", h.equipment.ToggleLossFlag)
		equipment.PUT("/reuse", h.equipment.SetReuseAll)
	}

	draft := wo.Group("/draft")
	{
		draft.PUT("", h.draft.Save)
		draft.GET("", h.draft.Restore)
		draft.DELETE("", h.draft.Clear)
	}

	hotbill := wo.Group("/hotbill")
	{
		hotbill.GET("", h.hotbill.Get)
		hotbill.POST("/confirm", h.hotbill.Confirm)
		hotbill.POST("/intent", h.hotbill.SetIntent)
		hotbill.POST("/recalculate", h.hotbill.Recalculate)
		hotbill.POST("/skip", h.hotbill.Skip)
	}

	removalLine := wo.Group("/removal-line")
	{
		removalLine.GET("", h.removalLine.Get)
		removalLine.PUT("", h.removalLine.Update)
		removalLine.POST("/complete", h.removalLine.Complete)
		removalLine.POST("/assign-as", h.removalLine.AssignAS)
		removalLine.POST("/as-ticket", h.removalLine.SaveASTicket)
		removalLine.POST("/cancel-as", h.removalLine.CancelAS)
		removalLine.POST("/edit", h.removalLine.Edit)
	}
}

func addEquipmentHistoryRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	rg.GET(PathEquipmentHistory, h.LookupEquipmentHistory)
}
