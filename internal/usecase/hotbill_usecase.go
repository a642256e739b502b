package usecase

import (
	"context"
	"errors"
	"fmt"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrHotbillMissingIdentifiers = errors.New("customer, contract and service office are required for recalculation")
	ErrHotbillSimulationFailed   = errors.New("billing simulation failed")
)

// IHotbillUseCase drives the early-termination billing flow.
type IHotbillUseCase interface {
	Load(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error)
	Get(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error)
	SetRecalcIntent(ctx context.Context, workOrderID string, intent bool) (entities.HotbillSnapshot, error)
	Recalculate(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error)
	Confirm(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error)
	Skip(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error)
}

type HotbillUseCase struct {
	sessions *SessionRegistry
	gateway  interfaces.IBillingGateway
	policy   entities.Policy
	log      *zap.SugaredLogger
}

var _ IHotbillUseCase = (*HotbillUseCase)(nil)

func NewHotbillUseCase(sessions *SessionRegistry, gateway interfaces.IBillingGateway, policy entities.Policy, log *zap.SugaredLogger) *HotbillUseCase {
	return &HotbillUseCase{sessions: sessions, gateway: gateway, policy: policy, log: orNop(log)}
}

// Load resolves the Loading state. Remote reads run without holding the
// session lock; a second concurrent Load keeps the first result.
func (u *HotbillUseCase) Load(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error) {
	s, err := u.sessions.Get(workOrderID)
	if err != nil {
		return entities.HotbillSnapshot{}, err
	}

	s.mu.Lock()
	if s.Hotbill.Status() != entities.HotbillLoading {
		snap := s.Hotbill.Snapshot()
		s.mu.Unlock()
		return snap, nil
	}
	wo := s.Order
	if !u.policy.HotbillApplies(wo) {
		err := s.Hotbill.MarkNotApplicable(ctx)
		snap := s.Hotbill.Snapshot()
		s.mu.Unlock()
		u.log.Debugw("[hotbill][usecase] not applicable", "work_order_id", wo.ID, "work_code", wo.WorkCode, "status", wo.WorkStatusCode)
		return snap, err
	}
	s.mu.Unlock()

	u.log.Infow("[hotbill][usecase] load start", "work_order_id", wo.ID, "customer_id", wo.CustomerID, "receipt_id", wo.ReceiptID)
	data, loadErr := u.fetch(ctx, wo, wo.ReceiptID)
	if loadErr != nil {
		u.log.Warnw("[hotbill][usecase] load failed, recalculation required", "work_order_id", wo.ID, "error", loadErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Hotbill.Status() == entities.HotbillLoading {
		if err := s.Hotbill.ApplyLoad(ctx, data, loadErr); err != nil {
			return s.Hotbill.Snapshot(), err
		}
	}
	snap := s.Hotbill.Snapshot()
	u.log.Infow("[hotbill][usecase] load done", "work_order_id", wo.ID, "status", snap.Status, "has_history", snap.HasHistory, "target_date", snap.TargetDate)
	return snap, nil
}

func (u *HotbillUseCase) Get(_ context.Context, workOrderID string) (entities.HotbillSnapshot, error) {
	var snap entities.HotbillSnapshot
	err := u.sessions.with(workOrderID, func(s *WorkSession) error {
		snap = s.Hotbill.Snapshot()
		return nil
	})
	return snap, err
}

func (u *HotbillUseCase) SetRecalcIntent(_ context.Context, workOrderID string, intent bool) (entities.HotbillSnapshot, error) {
	var snap entities.HotbillSnapshot
	err := u.sessions.with(workOrderID, func(s *WorkSession) error {
		err := s.Hotbill.SetRecalcIntent(intent)
		snap = s.Hotbill.Snapshot()
		return err
	})
	return snap, err
}

// Recalculate runs the billing simulation and refreshes the breakdown
// under the billing session it returns.
func (u *HotbillUseCase) Recalculate(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error) {
	s, err := u.sessions.Get(workOrderID)
	if err != nil {
		return entities.HotbillSnapshot{}, err
	}

	s.mu.Lock()
	wo := s.Order
	if wo.CustomerID == "" || wo.ContractID == "" || wo.ServiceOfficeID == "" {
		snap := s.Hotbill.Snapshot()
		s.mu.Unlock()
		return snap, ErrHotbillMissingIdentifiers
	}
	if err := s.Hotbill.BeginRecalculation(ctx); err != nil {
		snap := s.Hotbill.Snapshot()
		s.mu.Unlock()
		return snap, err
	}
	today := s.Hotbill.Snapshot().Today
	s.mu.Unlock()

	u.log.Infow("[hotbill][usecase] recalculation start", "work_order_id", wo.ID, "contract_id", wo.ContractID, "date", today)
	data, recalcErr := u.simulate(ctx, wo, today)
	if recalcErr != nil {
		u.log.Warnw("[hotbill][usecase] recalculation failed", "work_order_id", wo.ID, "error", recalcErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Hotbill.FinishRecalculation(ctx, data, recalcErr); err != nil {
		return s.Hotbill.Snapshot(), err
	}
	snap := s.Hotbill.Snapshot()
	if recalcErr != nil {
		return snap, recalcErr
	}
	u.log.Infow("[hotbill][usecase] recalculation done", "work_order_id", wo.ID, "total", snap.Total, "billing_session_id", snap.BillingSessionID)
	return snap, nil
}

func (u *HotbillUseCase) Confirm(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error) {
	return u.transition(workOrderID, func(m *workflow.HotbillMachine) error { return m.Confirm(ctx) })
}

func (u *HotbillUseCase) Skip(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error) {
	return u.transition(workOrderID, func(m *workflow.HotbillMachine) error { return m.Skip(ctx) })
}

func (u *HotbillUseCase) transition(workOrderID string, fn func(m *workflow.HotbillMachine) error) (entities.HotbillSnapshot, error) {
	var snap entities.HotbillSnapshot
	err := u.sessions.with(workOrderID, func(s *WorkSession) error {
		err := fn(s.Hotbill)
		snap = s.Hotbill.Snapshot()
		if err == nil {
			u.log.Infow("[hotbill][usecase] transition", "work_order_id", s.Order.ID, "status", snap.Status)
		}
		return err
	})
	return snap, err
}

func (u *HotbillUseCase) simulate(ctx context.Context, wo entities.WorkOrder, today string) (workflow.HotbillData, error) {
	res, err := u.gateway.RunBillingSimulation(ctx, entities.SimulationRequest{
		CustomerID:      wo.CustomerID,
		ContractID:      wo.ContractID,
		ServiceOfficeID: wo.ServiceOfficeID,
		Date:            today,
		WorkClass:       u.policy.HotbillSimulationWorkClass,
	})
	if err != nil {
		return workflow.HotbillData{}, fmt.Errorf("%w: %v", ErrHotbillSimulationFailed, err)
	}
	if res.Status != "SUCCESS" && res.Status != "OK" {
		return workflow.HotbillData{}, fmt.Errorf("%w: %s %s", ErrHotbillSimulationFailed, res.Status, res.Message)
	}

	receiptID := res.BillingSessionID
	if receiptID == "" {
		receiptID = wo.ReceiptID
	}
	data, err := u.fetch(ctx, wo, receiptID)
	if err != nil {
		return workflow.HotbillData{}, fmt.Errorf("refresh after simulation: %w", err)
	}
	data.BillingSessionID = res.BillingSessionID
	return data, nil
}

// fetch walks summary, contract and charge. A charge failure leaves the
// breakdown empty without failing the load.
func (u *HotbillUseCase) fetch(ctx context.Context, wo entities.WorkOrder, receiptID string) (workflow.HotbillData, error) {
	details, err := u.gateway.FetchBillingSummary(ctx, wo.CustomerID, receiptID)
	if err != nil {
		return workflow.HotbillData{}, fmt.Errorf("fetch billing summary: %w", err)
	}
	if len(details) == 0 {
		return workflow.HotbillData{HasHistory: false}, nil
	}

	d := details[0]
	so := d.ServiceOfficeID
	if so == "" {
		so = wo.ServiceOfficeID
	}
	contracts, err := u.gateway.FetchBillingByContract(ctx, entities.BillingContractQuery{
		CustomerID:      wo.CustomerID,
		ReceiptID:       receiptID,
		BillSeqNo:       d.BillSeqNo,
		ProductGroup:    d.ProductGroup,
		ServiceOfficeID: so,
		WorkClass:       u.policy.HotbillContractWorkClass,
	})
	if err != nil {
		return workflow.HotbillData{}, fmt.Errorf("fetch billing by contract: %w", err)
	}

	data := workflow.HotbillData{HasHistory: true}
	if len(contracts) == 0 {
		return data, nil
	}
	c := contracts[0]
	for _, candidate := range contracts {
		if candidate.ContractID == wo.ContractID {
			c = candidate
			break
		}
	}
	data.ContractID = c.ContractID

	lines, err := u.gateway.FetchBillingByCharge(ctx, entities.BillingChargeQuery{
		BillSeqNo:  c.BillSeqNo,
		CalcWorkNo: c.CalcWorkNo,
		ContractID: c.ContractID,
	})
	if err != nil {
		u.log.Warnw("[hotbill][usecase] charge breakdown unavailable", "work_order_id", wo.ID, "contract_id", c.ContractID, "error", err)
		return data, nil
	}
	data.Lines = lines
	return data, nil
}

func orNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}
