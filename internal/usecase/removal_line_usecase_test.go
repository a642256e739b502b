package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
)

func cableOrder(id string) entities.WorkOrder {
	wo := removalOrder(id)
	wo.KPIProductGroup = "C"
	return wo
}

func TestRemovalLineUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("not applicable", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))
		uc := NewRemovalLineUseCase(reg, testClock(), nil)

		_, err := uc.Get(ctx, "WO-1")
		if !errors.Is(err, ErrRemovalLineNotApplicable) {
			t.Fatalf("expected ErrRemovalLineNotApplicable, got %v", err)
		}
	})

	t.Run("complete path", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, cableOrder("WO-1"))
		uc := NewRemovalLineUseCase(reg, testClock(), nil)

		snap, err := uc.Update(ctx, "WO-1", RemovalLineUpdate{WiringType: entities.WiringOneToOne})
		if err != nil || !snap.CanComplete {
			t.Fatalf("expected complete enabled, got %+v err=%v", snap, err)
		}
		snap, err = uc.Complete(ctx, "WO-1")
		if err != nil || !snap.Decision.Resolved || snap.Status != entities.RemovalLineCompleted {
			t.Fatalf("expected resolved, got %+v err=%v", snap, err)
		}
		if _, err := uc.Update(ctx, "WO-1", RemovalLineUpdate{WiringType: entities.WiringSharedDrop}); !errors.Is(err, workflow.ErrRemovalLineLocked) {
			t.Fatalf("expected ErrRemovalLineLocked, got %v", err)
		}

		snap, err = uc.Edit(ctx, "WO-1")
		if err != nil || snap.Decision.Resolved || snap.Registered {
			t.Fatalf("expected reopened, got %+v err=%v", snap, err)
		}
	})

	t.Run("WO-1003 AS path stages ticket", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		wo := cableOrder("WO-1003")
		wo.Address = entities.WorkAddress{PostID: "06236", Text: "Seoul"}
		openTestSession(t, reg, wo)
		uc := NewRemovalLineUseCase(reg, testClock(), nil)

		snap, err := uc.Update(ctx, "WO-1003", RemovalLineUpdate{
			WiringType: entities.WiringDedicatedDrop,
			Outcome:    entities.OutcomeIncomplete,
			Reason:     entities.ReasonAccessDenied,
		})
		if err != nil || !snap.CanAssignAS || snap.CanComplete {
			t.Fatalf("expected AS enabled, got %+v err=%v", snap, err)
		}
		if _, err := uc.AssignAS(ctx, "WO-1003"); err != nil {
			t.Fatalf("assign AS: %v", err)
		}

		snap, err = uc.SaveASTicket(ctx, "WO-1003", ASTicketInput{Memo: " gate locked "})
		if err != nil {
			t.Fatalf("save ticket: %v", err)
		}
		tk := snap.StagedTicket
		if tk == nil || !snap.Decision.Resolved {
			t.Fatalf("expected staged ticket, got %+v", snap)
		}
		if tk.DetailCode != "JHA" || tk.WorkDetailTypeCode != "0380" || tk.ReceiptClass != "JH" || tk.CarrierID != "01" {
			t.Fatalf("unexpected ticket codes %+v", tk)
		}
		if tk.Memo != "gate locked" || tk.ContactPhone != wo.CustomerPhone || tk.Address.PostID != "06236" {
			t.Fatalf("unexpected ticket context %+v", tk)
		}
		want := time.Date(2024, 1, 31, 10, 0, 0, 0, kst)
		if !tk.HopeAt.Equal(want) {
			t.Fatalf("expected default hope %v, got %v", want, tk.HopeAt)
		}
	})

	t.Run("AS hope in the past is rejected", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, cableOrder("WO-1"))
		uc := NewRemovalLineUseCase(reg, testClock(), nil)

		_, _ = uc.Update(ctx, "WO-1", RemovalLineUpdate{WiringType: entities.WiringTrunkShared, Outcome: entities.OutcomeIncomplete, Reason: entities.ReasonSpecialZone})
		_, _ = uc.AssignAS(ctx, "WO-1")
		past := time.Date(2024, 1, 10, 10, 0, 0, 0, kst)
		if _, err := uc.SaveASTicket(ctx, "WO-1", ASTicketInput{HopeAt: &past}); !errors.Is(err, workflow.ErrASHopeInPast) {
			t.Fatalf("expected ErrASHopeInPast, got %v", err)
		}

		snap, err := uc.CancelAS(ctx, "WO-1")
		if err != nil || snap.Status != entities.RemovalLineEditing {
			t.Fatalf("expected back to editing, got %+v err=%v", snap, err)
		}
	})

	t.Run("same wiring type keeps outcome", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, cableOrder("WO-1"))
		uc := NewRemovalLineUseCase(reg, testClock(), nil)

		_, _ = uc.Update(ctx, "WO-1", RemovalLineUpdate{WiringType: entities.WiringOneToOne, Outcome: entities.OutcomeIncomplete})
		snap, err := uc.Update(ctx, "WO-1", RemovalLineUpdate{WiringType: entities.WiringOneToOne})
		if err != nil || snap.Decision.Outcome != entities.OutcomeIncomplete {
			t.Fatalf("expected outcome kept, got %+v err=%v", snap, err)
		}
	})
}
