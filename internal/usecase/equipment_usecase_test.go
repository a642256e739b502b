package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops_completion/internal/adapter/persistence/memory"
	"fieldops_completion/internal/domain/entities"
	mock_interfaces "fieldops_completion/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEquipmentUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid loss field", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil, NewSessionRegistry(time.Hour))
		if _, err := uc.ToggleLossFlag(ctx, "WO-1", "M-1", "stolen"); !errors.Is(err, ErrInvalidLossField) {
			t.Fatalf("expected ErrInvalidLossField, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEquipmentStore(ctrl)
		store.EXPECT().MarkForRemoval("WO-1", "M-9").Return(entities.EquipmentAggregate{}, false)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))

		uc := NewEquipmentUseCase(store, reg)
		if _, err := uc.MarkForRemoval(ctx, "WO-1", "M-9"); !errors.Is(err, ErrEquipmentItemNotFound) {
			t.Fatalf("expected ErrEquipmentItemNotFound, got %v", err)
		}
	})

	t.Run("toggle passes field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEquipmentStore(ctrl)
		store.EXPECT().ToggleLossFlag("WO-1", "M-1", entities.LossFieldBroken).Return(entities.EquipmentAggregate{WorkOrderID: "WO-1"}, true)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))

		uc := NewEquipmentUseCase(store, reg)
		agg, err := uc.ToggleLossFlag(ctx, " WO-1 ", "M-1", entities.LossFieldBroken)
		if err != nil || agg.WorkOrderID != "WO-1" {
			t.Fatalf("unexpected result %+v err=%v", agg, err)
		}
	})

	t.Run("missing contract for installed", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil, NewSessionRegistry(time.Hour))
		if _, err := uc.AddInstalled(ctx, "WO-1", " ", nil); !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("completed work order is read-only", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		reg.Complete("WO-1")
		uc := NewEquipmentUseCase(nil, reg)
		if _, err := uc.SetReuseAll(ctx, "WO-1", true); !errors.Is(err, ErrWorkOrderCompleted) {
			t.Fatalf("expected ErrWorkOrderCompleted, got %v", err)
		}
	})

	t.Run("unopened work order is refused and leaves no state", func(t *testing.T) {
		store := memory.NewEquipmentStore(nil)
		uc := NewEquipmentUseCase(store, NewSessionRegistry(time.Hour))

		if _, err := uc.SetReuseAll(ctx, "WO-X", true); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if _, err := uc.SetApiData(ctx, "WO-X", entities.EquipmentLists{}); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if _, err := uc.AddInstalled(ctx, "WO-X", "CTRT-1", nil); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if _, ok := store.Get("WO-X"); ok {
			t.Fatalf("expected no store entry for an unopened work order")
		}
	})

	t.Run("open session edits the store", func(t *testing.T) {
		store := memory.NewEquipmentStore(nil)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))
		uc := NewEquipmentUseCase(store, reg)

		agg, err := uc.SetReuseAll(ctx, "WO-1", true)
		if err != nil || !agg.ReuseAll {
			t.Fatalf("expected reuse set, got %+v err=%v", agg, err)
		}
	})
}
