package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/infrastructure/metrics"
	"fieldops_completion/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrWorkOrderMismatch       = errors.New("work order id does not match path")
	ErrInvalidSuspensionPeriod = errors.New("invalid suspension period")
	ErrEquipmentLookupEmpty    = errors.New("serial or mac is required")
)

const prefetchConcurrency = 4

// WorkOrderView is the full session state returned to the client.
type WorkOrderView struct {
	Order         entities.WorkOrder                   `json:"order"`
	Equipment     entities.EquipmentAggregate          `json:"equipment"`
	Hotbill       entities.HotbillSnapshot             `json:"hotbill"`
	RemovalLine   entities.RemovalLineSnapshot         `json:"removal_line"`
	Certification entities.CertificationState          `json:"certification"`
	Signal        entities.SignalAttempt               `json:"signal"`
	Suspension    *entities.SuspensionEdit             `json:"suspension,omitempty"`
	History       map[string]*entities.EquipmentRecord `json:"history,omitempty"`
}

type SuspensionInput struct {
	ContractID string
	StartDate  string
	EndDate    string
}

// IWorkOrderUseCase opens work-order sessions and serves their state.
type IWorkOrderUseCase interface {
	Open(ctx context.Context, wo entities.WorkOrder, lists entities.EquipmentLists) (WorkOrderView, error)
	Get(ctx context.Context, workOrderID string) (WorkOrderView, error)
	LookupEquipmentHistory(ctx context.Context, serialNo, mac string) (*entities.EquipmentRecord, error)
	StageSuspension(ctx context.Context, workOrderID string, in SuspensionInput) (entities.SuspensionEdit, error)
}

type WorkOrderUseCase struct {
	sessions *SessionRegistry
	store    interfaces.IEquipmentStore
	hotbill  IHotbillUseCase
	lookup   interfaces.IEquipmentLookupGateway
	policy   entities.Policy
	clock    Clock
	log      *zap.SugaredLogger
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	sessions *SessionRegistry,
	store interfaces.IEquipmentStore,
	hotbill IHotbillUseCase,
	lookup interfaces.IEquipmentLookupGateway,
	policy entities.Policy,
	clock Clock,
	log *zap.SugaredLogger,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		sessions: sessions,
		store:    store,
		hotbill:  hotbill,
		lookup:   lookup,
		policy:   policy,
		clock:    clock,
		log:      orNop(log),
	}
}

// Open creates the session on first call and applies the equipment lists.
// It then runs the read-only prefetches concurrently: hotbill load and
// equipment history for the removal candidates.
func (u *WorkOrderUseCase) Open(ctx context.Context, wo entities.WorkOrder, lists entities.EquipmentLists) (WorkOrderView, error) {
	wo.ID = strings.TrimSpace(wo.ID)
	s, created, err := u.sessions.Open(wo.ID, func() *WorkSession {
		return u.newSession(wo)
	})
	if err != nil {
		return WorkOrderView{}, err
	}

	agg := u.store.SetApiData(wo.ID, lists)
	if created && u.policy.DefaultReuse(wo) && !agg.ReuseAll {
		u.store.SetReuseAll(wo.ID, true)
	}
	u.log.Infow("[work-order][usecase] open", "work_order_id", wo.ID, "created", created, "work_code", wo.WorkCode, "product_group", wo.ProductGroup)

	history := u.prefetch(ctx, wo.ID, agg)

	view, err := u.view(s)
	if err != nil {
		return WorkOrderView{}, err
	}
	view.History = history
	return view, nil
}

func (u *WorkOrderUseCase) Get(_ context.Context, workOrderID string) (WorkOrderView, error) {
	s, err := u.sessions.Get(workOrderID)
	if err != nil {
		return WorkOrderView{}, err
	}
	return u.view(s)
}

func (u *WorkOrderUseCase) LookupEquipmentHistory(ctx context.Context, serialNo, mac string) (*entities.EquipmentRecord, error) {
	serialNo, mac = strings.TrimSpace(serialNo), strings.TrimSpace(mac)
	if serialNo == "" && mac == "" {
		return nil, ErrEquipmentLookupEmpty
	}
	return u.lookup.LookupEquipmentHistory(ctx, serialNo, mac)
}

// StageSuspension records a suspension-period adjustment to be committed
// by the completion pipeline.
func (u *WorkOrderUseCase) StageSuspension(_ context.Context, workOrderID string, in SuspensionInput) (entities.SuspensionEdit, error) {
	loc := u.clock.Location()
	start, err := entities.ParseDateKey(strings.TrimSpace(in.StartDate), loc)
	if err != nil {
		return entities.SuspensionEdit{}, fmt.Errorf("%w: start_date: %v", ErrInvalidSuspensionPeriod, err)
	}
	end, err := entities.ParseDateKey(strings.TrimSpace(in.EndDate), loc)
	if err != nil {
		return entities.SuspensionEdit{}, fmt.Errorf("%w: end_date: %v", ErrInvalidSuspensionPeriod, err)
	}
	if end.Before(start) {
		return entities.SuspensionEdit{}, fmt.Errorf("%w: end_date before start_date", ErrInvalidSuspensionPeriod)
	}

	var edit entities.SuspensionEdit
	err = u.sessions.with(workOrderID, func(s *WorkSession) error {
		contractID := strings.TrimSpace(in.ContractID)
		if contractID == "" {
			contractID = s.Order.ContractID
		}
		edit = entities.SuspensionEdit{
			ContractID: contractID,
			StartDate:  entities.DateKey(start),
			EndDate:    entities.DateKey(end),
			Days:       int(math.Round(end.Sub(start).Hours()/24)) + 1,
		}
		s.Suspension = &edit
		return nil
	})
	if err != nil {
		return entities.SuspensionEdit{}, err
	}
	u.log.Infow("[work-order][usecase] suspension staged", "work_order_id", workOrderID, "contract_id", edit.ContractID, "days", edit.Days)
	return edit, nil
}

func (u *WorkOrderUseCase) newSession(wo entities.WorkOrder) *WorkSession {
	s := &WorkSession{
		Order:    wo,
		OpenedAt: u.clock.Now(),
		Hotbill: workflow.NewHotbillMachine(wo.TerminationHopeDate, u.clock.Today(), func(to entities.HotbillStatus) {
			metrics.HotbillTransitions.WithLabelValues(string(to)).Inc()
		}),
	}
	if u.policy.RemovalLineApplies(wo) {
		s.RemovalLine = workflow.NewRemovalLineMachine()
	}
	return s
}

// prefetch never fails the open; lookup errors are logged and the item is
// left out of the history map.
func (u *WorkOrderUseCase) prefetch(ctx context.Context, workOrderID string, agg entities.EquipmentAggregate) map[string]*entities.EquipmentRecord {
	var (
		mu      sync.Mutex
		history = map[string]*entities.EquipmentRecord{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)

	g.Go(func() error {
		if _, err := u.hotbill.Load(gctx, workOrderID); err != nil {
			u.log.Warnw("[work-order][usecase] hotbill prefetch failed", "work_order_id", workOrderID, "error", err)
		}
		return nil
	})

	seen := map[string]bool{}
	for _, it := range append(append([]entities.EquipmentItem{}, agg.RemovalCandidates...), agg.CustomerEquipment...) {
		if seen[it.ID] || (it.SerialNo == "" && it.MAC == "") {
			continue
		}
		seen[it.ID] = true
		it := it
		g.Go(func() error {
			rec, err := u.lookup.LookupEquipmentHistory(gctx, it.SerialNo, it.MAC)
			if err != nil {
				u.log.Warnw("[work-order][usecase] equipment history unavailable", "work_order_id", workOrderID, "item_id", it.ID, "error", err)
				return nil
			}
			if rec == nil {
				return nil
			}
			mu.Lock()
			history[it.ID] = rec
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return history
}

func (u *WorkOrderUseCase) view(s *WorkSession) (WorkOrderView, error) {
	s.mu.Lock()
	v := WorkOrderView{
		Order:         s.Order,
		Hotbill:       s.Hotbill.Snapshot(),
		RemovalLine:   removalLineSnapshot(s),
		Certification: s.Certification,
		Signal:        s.Signal,
	}
	if s.Suspension != nil {
		edit := *s.Suspension
		v.Suspension = &edit
	}
	s.mu.Unlock()

	agg, ok := u.store.Get(s.Order.ID)
	if !ok {
		agg = *entities.NewEquipmentAggregate(s.Order.ID)
	}
	v.Equipment = agg
	return v, nil
}
