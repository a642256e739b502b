package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"fieldops_completion/internal/adapter/http/handlers/mocks"
	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IWorkOrderUseCase) *gin.Engine {
		h := NewWorkOrderHandler(uc)
		r := gin.New()
		r.PUT("/v1/work-orders/:id", h.Open)
		r.GET("/v1/work-orders/:id", h.Get)
		r.POST("/v1/work-orders/:id/suspension", h.StageSuspension)
		r.GET("/v1/equipment-history", h.LookupEquipmentHistory)
		return r
	}

	t.Run("open fills id from path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, wo entities.WorkOrder, _ entities.EquipmentLists) (usecase.WorkOrderView, error) {
			if wo.ID != "WO-1" || wo.CustomerID != "C-1" {
				t.Fatalf("unexpected work order %+v", wo)
			}
			return usecase.WorkOrderView{Order: wo}, nil
		})

		w := do(newRouter(uc), http.MethodPut, "/v1/work-orders/WO-1", `{"work_order":{"customer_id":"C-1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("open with mismatched id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := do(newRouter(mocks.NewMockIWorkOrderUseCase(ctrl)), http.MethodPut, "/v1/work-orders/WO-1", `{"work_order":{"id":"WO-2"}}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "WORK_ORDER_MISMATCH" {
			t.Fatalf("expected 400 WORK_ORDER_MISMATCH, got %d", w.Code)
		}
	})

	t.Run("get unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "WO-9").Return(usecase.WorkOrderView{}, usecase.ErrSessionNotFound)

		w := do(newRouter(uc), http.MethodGet, "/v1/work-orders/WO-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("suspension period invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().StageSuspension(gomock.Any(), "WO-1", usecase.SuspensionInput{StartDate: "20240110", EndDate: "20240101"}).
			Return(entities.SuspensionEdit{}, usecase.ErrInvalidSuspensionPeriod)

		w := do(newRouter(uc), http.MethodPost, "/v1/work-orders/WO-1/suspension", `{"start_date":"20240110","end_date":"20240101"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("history lookup failure is a gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().LookupEquipmentHistory(gomock.Any(), "SN-1", "").Return(nil, errors.New("timeout"))

		w := do(newRouter(uc), http.MethodGet, "/v1/equipment-history?serial=SN-1", "")
		if w.Code != http.StatusBadGateway || decodeError(t, w).Code != "LEGACY_UNAVAILABLE" {
			t.Fatalf("expected 502 LEGACY_UNAVAILABLE, got %d", w.Code)
		}
	})
}

func TestEquipmentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEquipmentUseCase) *gin.Engine {
		h := NewEquipmentHandler(uc)
		r := gin.New()
		r.POST("/v1/work-orders/:id/equipment/:item_id/remove", h.MarkForRemoval)
		r.POST("/v1/work-orders/:id/equipment/:item_id/loss", h.ToggleLossFlag)
		r.PUT("/v1/work-orders/:id/equipment/reuse", h.SetReuseAll)
		return r
	}

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		uc.EXPECT().MarkForRemoval(gomock.Any(), "WO-1", "M-9").Return(entities.EquipmentAggregate{}, usecase.ErrEquipmentItemNotFound)

		w := do(newRouter(uc), http.MethodPost, "/v1/work-orders/WO-1/equipment/M-9/remove", "")
		if w.Code != http.StatusNotFound || decodeError(t, w).Code != "EQUIPMENT_ITEM_NOT_FOUND" {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid loss field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		uc.EXPECT().ToggleLossFlag(gomock.Any(), "WO-1", "M-1", entities.LossField("stolen")).Return(entities.EquipmentAggregate{}, usecase.ErrInvalidLossField)

		w := do(newRouter(uc), http.MethodPost, "/v1/work-orders/WO-1/equipment/M-1/loss", `{"field":"stolen"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reuse requires a value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := do(newRouter(mocks.NewMockIEquipmentUseCase(ctrl)), http.MethodPut, "/v1/work-orders/WO-1/equipment/reuse", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reuse false is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEquipmentUseCase(ctrl)
		uc.EXPECT().SetReuseAll(gomock.Any(), "WO-1", false).Return(entities.EquipmentAggregate{WorkOrderID: "WO-1"}, nil)

		w := do(newRouter(uc), http.MethodPut, "/v1/work-orders/WO-1/equipment/reuse", `{"reuse":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IDraftUseCase) *gin.Engine {
		h := NewDraftHandler(uc)
		r := gin.New()
		r.GET("/v1/work-orders/:id/draft", h.Restore)
		r.DELETE("/v1/work-orders/:id/draft", h.Clear)
		r.PUT("/v1/work-orders/:id/draft", h.Save)
		return r
	}

	t.Run("restore missing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		uc.EXPECT().Restore(gomock.Any(), "WO-1").Return(entities.Draft{}, usecase.ErrDraftNotFound)

		w := do(newRouter(uc), http.MethodGet, "/v1/work-orders/WO-1/draft", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		uc.EXPECT().Clear(gomock.Any(), "WO-1").Return(nil)

		w := do(newRouter(uc), http.MethodDelete, "/v1/work-orders/WO-1/draft", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("save after completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		uc.EXPECT().Save(gomock.Any(), "WO-1", gomock.Any()).Return(entities.Draft{}, usecase.ErrWorkOrderCompleted)

		w := do(newRouter(uc), http.MethodPut, "/v1/work-orders/WO-1/draft", `{"fields":{"memo":"late"}}`)
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "WORK_ORDER_COMPLETED" {
			t.Fatalf("expected 409 WORK_ORDER_COMPLETED, got %d", w.Code)
		}
	})

	t.Run("save store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		uc.EXPECT().Save(gomock.Any(), "WO-1", gomock.Any()).Return(entities.Draft{}, errors.New("dynamo down"))

		w := do(newRouter(uc), http.MethodPut, "/v1/work-orders/WO-1/draft", `{"fields":{"memo":"x"}}`)
		if w.Code != http.StatusInternalServerError || decodeError(t, w).Code != "DRAFT_STORE_ERROR" {
			t.Fatalf("expected 500 DRAFT_STORE_ERROR, got %d", w.Code)
		}
	})
}

func TestHotbillHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IHotbillUseCase) *gin.Engine {
		h := NewHotbillHandler(uc)
		r := gin.New()
		r.GET("/v1/work-orders/:id/hotbill", h.Get)
		r.POST("/v1/work-orders/:id/hotbill/confirm", h.Confirm)
		r.PUT("/v1/work-orders/:id/hotbill/intent", h.SetIntent)
		return r
	}

	t.Run("intent missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := do(newRouter(mocks.NewMockIHotbillUseCase(ctrl)), http.MethodPut, "/v1/work-orders/WO-1/hotbill/intent", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirm from wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHotbillUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "WO-1").Return(entities.HotbillSnapshot{}, workflow.ErrTransitionNotAllowed)

		w := do(newRouter(uc), http.MethodPost, "/v1/work-orders/WO-1/hotbill/confirm", "")
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "INVALID_STATE" {
			t.Fatalf("expected 409 INVALID_STATE, got %d", w.Code)
		}
	})

	t.Run("missing identifiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHotbillUseCase(ctrl)
		uc.EXPECT().Load(gomock.Any(), "WO-1").Return(entities.HotbillSnapshot{}, usecase.ErrHotbillMissingIdentifiers)

		w := do(newRouter(uc), http.MethodGet, "/v1/work-orders/WO-1/hotbill", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestRemovalLineHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IRemovalLineUseCase) *gin.Engine {
		h := NewRemovalLineHandler(uc)
		r := gin.New()
		r.GET("/v1/work-orders/:id/removal-line", h.Get)
		r.PUT("/v1/work-orders/:id/removal-line/as-ticket", h.SaveASTicket)
		return r
	}

	t.Run("not applicable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRemovalLineUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "WO-1").Return(entities.RemovalLineSnapshot{}, usecase.ErrRemovalLineNotApplicable)

		w := do(newRouter(uc), http.MethodGet, "/v1/work-orders/WO-1/removal-line", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("hope date in the past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRemovalLineUseCase(ctrl)
		hope := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().SaveASTicket(gomock.Any(), "WO-1", gomock.Any()).Return(entities.RemovalLineSnapshot{}, workflow.ErrASHopeInPast)

		w := do(newRouter(uc), http.MethodPut, "/v1/work-orders/WO-1/removal-line/as-ticket", `{"hope_at":"`+hope.Format(time.RFC3339)+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
