package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	mock_interfaces "fieldops_completion/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func expectHistory(gw *mock_interfaces.MockIBillingGateway, receiptID string, lines []entities.ChargeLine) {
	gw.EXPECT().FetchBillingSummary(gomock.Any(), "CUST-1", receiptID).
		Return([]entities.BillingDetail{{BillSeqNo: "7", ProductGroup: "C", ServiceOfficeID: "SO-1"}}, nil)
	gw.EXPECT().FetchBillingByContract(gomock.Any(), gomock.Any()).
		Return([]entities.BillingContract{{ContractID: "CTRT-9", BillSeqNo: "7"}, {ContractID: "CTRT-1", BillSeqNo: "7", CalcWorkNo: "W1"}}, nil)
	gw.EXPECT().FetchBillingByCharge(gomock.Any(), entities.BillingChargeQuery{BillSeqNo: "7", CalcWorkNo: "W1", ContractID: "CTRT-1"}).
		Return(lines, nil)
}

func TestHotbillUseCase_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("not applicable work code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		wo := removalOrder("WO-1")
		wo.WorkCode = "01"
		openTestSession(t, reg, wo)

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		snap, err := uc.Load(ctx, "WO-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if snap.Status != entities.HotbillNotApplicable || !snap.Ready {
			t.Fatalf("expected ready not_applicable, got %+v", snap)
		}
	})

	t.Run("WO-1001 history on target date needs explicit confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1001"))
		expectHistory(gw, "RCPT-WO-1001", []entities.ChargeLine{{Name: "fee", Amount: 3000, SortKey: 1}})

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		snap, err := uc.Load(ctx, "WO-1001")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if snap.Status != entities.HotbillNormalPending || snap.Ready {
			t.Fatalf("expected pending, got %+v", snap)
		}
		if snap.ContractID != "CTRT-1" || snap.Total != 3000 {
			t.Fatalf("expected matching contract breakdown, got %+v", snap)
		}

		snap, err = uc.Confirm(ctx, "WO-1001")
		if err != nil || snap.Status != entities.HotbillNormalConfirmed || !snap.Ready {
			t.Fatalf("expected confirmed, got %+v err=%v", snap, err)
		}
	})

	t.Run("summary failure falls back to recalculation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))
		gw.EXPECT().FetchBillingSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		snap, err := uc.Load(ctx, "WO-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if snap.Status != entities.HotbillRecalcNeeded || snap.LastError == "" {
			t.Fatalf("expected recalc_needed with error, got %+v", snap)
		}
	})

	t.Run("charge failure keeps empty breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))
		gw.EXPECT().FetchBillingSummary(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.BillingDetail{{BillSeqNo: "1"}}, nil)
		gw.EXPECT().FetchBillingByContract(gomock.Any(), gomock.Any()).
			Return([]entities.BillingContract{{ContractID: "CTRT-1"}}, nil)
		gw.EXPECT().FetchBillingByCharge(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		snap, err := uc.Load(ctx, "WO-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if snap.Status != entities.HotbillNormalPending || len(snap.ChargeLines) != 0 {
			t.Fatalf("expected pending with no lines, got %+v", snap)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := NewHotbillUseCase(NewSessionRegistry(time.Hour), nil, entities.DefaultPolicy(), nil)
		_, err := uc.Load(ctx, "missing")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestHotbillUseCase_Recalculate(t *testing.T) {
	ctx := context.Background()

	t.Run("WO-1002 no history recalculates and confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1002"))
		gw.EXPECT().FetchBillingSummary(gomock.Any(), "CUST-1", "RCPT-WO-1002").Return(nil, nil)

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		snap, err := uc.Load(ctx, "WO-1002")
		if err != nil || snap.Status != entities.HotbillRecalcNeeded {
			t.Fatalf("expected recalc_needed, got %+v err=%v", snap, err)
		}

		gw.EXPECT().RunBillingSimulation(gomock.Any(), entities.SimulationRequest{
			CustomerID: "CUST-1", ContractID: "CTRT-1", ServiceOfficeID: "SO-1", Date: "20240115", WorkClass: "2",
		}).Return(entities.SimulationResult{Status: "SUCCESS", BillingSessionID: "RCPT-NEW"}, nil)
		expectHistory(gw, "RCPT-NEW", []entities.ChargeLine{
			{Name: "usage", Amount: 1000, SortKey: 2},
			{Name: "deposit", Amount: 0, Required: true, SortKey: 1},
			{Name: "discount", Amount: 0, SortKey: 3},
			{Name: "penalty", Amount: 500, SortKey: 4},
		})

		snap, err = uc.Recalculate(ctx, "WO-1002")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if snap.Status != entities.HotbillRecalcDonePending {
			t.Fatalf("expected recalc_done_pending, got %s", snap.Status)
		}
		if snap.Total != 1500 || len(snap.ChargeLines) != 3 || snap.ChargeLines[0].Name != "deposit" {
			t.Fatalf("unexpected breakdown %+v", snap.ChargeLines)
		}
		if snap.BillingSessionID != "RCPT-NEW" {
			t.Fatalf("expected billing session id, got %q", snap.BillingSessionID)
		}

		snap, err = uc.Confirm(ctx, "WO-1002")
		if err != nil || snap.Status != entities.HotbillRecalcConfirmed || !snap.Ready {
			t.Fatalf("expected recalc_confirmed, got %+v err=%v", snap, err)
		}
	})

	t.Run("simulation failure moves to error then skip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		openTestSession(t, reg, removalOrder("WO-1"))
		gw.EXPECT().FetchBillingSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		gw.EXPECT().RunBillingSimulation(gomock.Any(), gomock.Any()).
			Return(entities.SimulationResult{Status: "FAIL", Message: "no contract"}, nil)

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		if _, err := uc.Load(ctx, "WO-1"); err != nil {
			t.Fatalf("load: %v", err)
		}
		snap, err := uc.Recalculate(ctx, "WO-1")
		if !errors.Is(err, ErrHotbillSimulationFailed) {
			t.Fatalf("expected ErrHotbillSimulationFailed, got %v", err)
		}
		if snap.Status != entities.HotbillError {
			t.Fatalf("expected error state, got %s", snap.Status)
		}

		snap, err = uc.Skip(ctx, "WO-1")
		if err != nil || snap.Status != entities.HotbillRecalcSkipped || !snap.Ready {
			t.Fatalf("expected recalc_skipped, got %+v err=%v", snap, err)
		}
	})

	t.Run("future dated requires intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIBillingGateway(ctrl)
		reg := NewSessionRegistry(time.Hour)
		wo := removalOrder("WO-1")
		wo.TerminationHopeDate = "20240131"
		openTestSession(t, reg, wo)
		expectHistory(gw, "RCPT-WO-1", nil)

		uc := NewHotbillUseCase(reg, gw, entities.DefaultPolicy(), nil)
		snap, err := uc.Load(ctx, "WO-1")
		if err != nil || snap.Status != entities.HotbillRecalcNeeded || !snap.FutureDated {
			t.Fatalf("expected future dated recalc_needed, got %+v err=%v", snap, err)
		}
		if _, err := uc.Recalculate(ctx, "WO-1"); !errors.Is(err, workflow.ErrRecalcIntentRequired) {
			t.Fatalf("expected ErrRecalcIntentRequired, got %v", err)
		}
		snap, err = uc.SetRecalcIntent(ctx, "WO-1", true)
		if err != nil || !snap.RecalcIntent {
			t.Fatalf("expected intent set, got %+v err=%v", snap, err)
		}
	})

	t.Run("missing identifiers", func(t *testing.T) {
		reg := NewSessionRegistry(time.Hour)
		wo := removalOrder("WO-1")
		wo.ServiceOfficeID = ""
		openTestSession(t, reg, wo)

		uc := NewHotbillUseCase(reg, nil, entities.DefaultPolicy(), nil)
		if _, err := uc.Recalculate(ctx, "WO-1"); !errors.Is(err, ErrHotbillMissingIdentifiers) {
			t.Fatalf("expected ErrHotbillMissingIdentifiers, got %v", err)
		}
	})
}
