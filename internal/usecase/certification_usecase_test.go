package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldops_completion/internal/domain/entities"
	mock_interfaces "fieldops_completion/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fiberOrder(id string) entities.WorkOrder {
	wo := removalOrder(id)
	wo.OperatorLinkCode = "F"
	wo.ProductCode = "FTTH100"
	return wo
}

func TestCertificationUseCase_Evaluate(t *testing.T) {
	ctx := context.Background()
	policy := entities.DefaultPolicy()

	t.Run("not applicable", func(t *testing.T) {
		uc := NewCertificationUseCase(nil, policy, nil)
		state, err := uc.Evaluate(ctx, removalOrder("WO-1"), entities.CertificationState{}, "a-1")
		if err != nil || state.Applicable {
			t.Fatalf("expected not applicable, got %+v err=%v", state, err)
		}
	})

	t.Run("query failure is treated as not certified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		gw.EXPECT().QueryCertification(gomock.Any(), "CTRT-1", "CUST-1", "SO-1").Return(entities.CertResult{}, errors.New("timeout"))

		uc := NewCertificationUseCase(gw, policy, nil)
		state, err := uc.Evaluate(ctx, fiberOrder("WO-1"), entities.CertificationState{}, "a-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !state.Applicable || state.Certified || state.Registered {
			t.Fatalf("unexpected state %+v", state)
		}
	})

	t.Run("bound to another contract is not certified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		gw.EXPECT().QueryCertification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CertResult{ContractID: "CTRT-X"}, nil)

		uc := NewCertificationUseCase(gw, policy, nil)
		state, err := uc.Evaluate(ctx, fiberOrder("WO-1"), entities.CertificationState{}, "a-1")
		if err != nil || state.Certified {
			t.Fatalf("expected not certified, got %+v err=%v", state, err)
		}
	})

	t.Run("WO-1004 hand-off skips registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		wo := fiberOrder("WO-1004")
		wo.NewProductCode = "FTTH500"
		wo.NewServiceOfficeID = "SO-9"
		gw.EXPECT().QueryCertification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CertResult{ContractID: "CTRT-1"}, nil)
		gw.EXPECT().ListCertifiedProducts(gomock.Any()).Return([]string{"FTTH500"}, nil)
		gw.EXPECT().ListCertifiedOffices(gomock.Any()).Return([]string{"SO-9"}, nil)

		uc := NewCertificationUseCase(gw, policy, nil)
		state, err := uc.Evaluate(ctx, wo, entities.CertificationState{}, "a-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !state.Certified || !state.HandOff || state.Registered {
			t.Fatalf("expected hand-off, got %+v", state)
		}
	})

	t.Run("registers termination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		gw.EXPECT().QueryCertification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CertResult{ContractID: "CTRT-1"}, nil)
		gw.EXPECT().ListCertifiedProducts(gomock.Any()).Return([]string{"OTHER"}, nil)
		gw.EXPECT().ListCertifiedOffices(gomock.Any()).Return([]string{"SO-1"}, nil)
		gw.EXPECT().RegisterCertificationTermination(gomock.Any(), "CTRT-1", "CUST-1", "SO-1").Return(entities.CertRegistration{Status: "OK"}, nil)

		uc := NewCertificationUseCase(gw, policy, nil)
		state, err := uc.Evaluate(ctx, fiberOrder("WO-1"), entities.CertificationState{}, "a-1")
		if err != nil || !state.Registered || state.AttemptID != "a-1" {
			t.Fatalf("expected registered, got %+v err=%v", state, err)
		}

		again, err := uc.Evaluate(ctx, fiberOrder("WO-1"), state, "a-2")
		if err != nil || again.AttemptID != "a-1" {
			t.Fatalf("expected prior registration kept, got %+v err=%v", again, err)
		}
	})

	t.Run("transferred order registers against the new service office", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		wo := fiberOrder("WO-1")
		wo.NewServiceOfficeID = "SO-7"
		gw.EXPECT().QueryCertification(gomock.Any(), "CTRT-1", "CUST-1", "SO-1").Return(entities.CertResult{ContractID: "CTRT-1"}, nil)
		gw.EXPECT().ListCertifiedProducts(gomock.Any()).Return([]string{"OTHER"}, nil)
		gw.EXPECT().ListCertifiedOffices(gomock.Any()).Return([]string{"SO-1"}, nil)
		gw.EXPECT().RegisterCertificationTermination(gomock.Any(), "CTRT-1", "CUST-1", "SO-7").Return(entities.CertRegistration{Status: "OK"}, nil)

		uc := NewCertificationUseCase(gw, policy, nil)
		state, err := uc.Evaluate(ctx, wo, entities.CertificationState{}, "a-1")
		if err != nil || !state.Registered {
			t.Fatalf("expected registered, got %+v err=%v", state, err)
		}
	})

	t.Run("registration rejection blocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		gw.EXPECT().QueryCertification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CertResult{ContractID: "CTRT-1"}, nil)
		gw.EXPECT().ListCertifiedProducts(gomock.Any()).Return(nil, nil)
		gw.EXPECT().ListCertifiedOffices(gomock.Any()).Return(nil, nil)
		gw.EXPECT().RegisterCertificationTermination(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CertRegistration{Error: "E-42"}, nil)

		uc := NewCertificationUseCase(gw, policy, nil)
		_, err := uc.Evaluate(ctx, fiberOrder("WO-1"), entities.CertificationState{}, "a-1")
		var be *BlockingError
		if !errors.As(err, &be) || be.Step != StepCertification {
			t.Fatalf("expected certification BlockingError, got %v", err)
		}
	})

	t.Run("target list failure blocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICertificationGateway(ctrl)
		gw.EXPECT().QueryCertification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CertResult{ContractID: "CTRT-1"}, nil)
		gw.EXPECT().ListCertifiedProducts(gomock.Any()).Return(nil, errors.New("down"))

		uc := NewCertificationUseCase(gw, policy, nil)
		_, err := uc.Evaluate(ctx, fiberOrder("WO-1"), entities.CertificationState{}, "a-1")
		if !errors.Is(err, ErrBlockingFailure) {
			t.Fatalf("expected ErrBlockingFailure, got %v", err)
		}
	})
}
