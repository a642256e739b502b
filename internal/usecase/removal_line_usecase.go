package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrRemovalLineNotApplicable = errors.New("removal line management does not apply to this work order")

// RemovalLineUpdate sets tree fields in order. Empty values are left as is.
type RemovalLineUpdate struct {
	WiringType entities.WiringType
	Outcome    entities.RemovalOutcome
	Reason     entities.IncompleteReason
}

// ASTicketInput is the operator input of the AS capture step.
type ASTicketInput struct {
	HopeAt       *time.Time
	ContactPhone string
	Memo         string
	Emergency    bool
	Holiday      bool
}

// IRemovalLineUseCase walks the removal-line decision tree.
type IRemovalLineUseCase interface {
	Get(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error)
	Update(ctx context.Context, workOrderID string, upd RemovalLineUpdate) (entities.RemovalLineSnapshot, error)
	Complete(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error)
	AssignAS(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error)
	SaveASTicket(ctx context.Context, workOrderID string, in ASTicketInput) (entities.RemovalLineSnapshot, error)
	CancelAS(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error)
	Edit(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error)
}

type RemovalLineUseCase struct {
	sessions *SessionRegistry
	clock    Clock
	log      *zap.SugaredLogger
}

var _ IRemovalLineUseCase = (*RemovalLineUseCase)(nil)

func NewRemovalLineUseCase(sessions *SessionRegistry, clock Clock, log *zap.SugaredLogger) *RemovalLineUseCase {
	return &RemovalLineUseCase{sessions: sessions, clock: clock, log: orNop(log)}
}

func (u *RemovalLineUseCase) Get(_ context.Context, workOrderID string) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(*WorkSession, *workflow.RemovalLineMachine) error { return nil })
}

func (u *RemovalLineUseCase) Update(_ context.Context, workOrderID string, upd RemovalLineUpdate) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(_ *WorkSession, m *workflow.RemovalLineMachine) error {
		if upd.WiringType != "" && upd.WiringType != m.Decision().WiringType {
			if err := m.SetWiringType(upd.WiringType); err != nil {
				return err
			}
		}
		if upd.Outcome != "" {
			if err := m.SetOutcome(upd.Outcome); err != nil {
				return err
			}
		}
		if upd.Reason != "" {
			if err := m.SetReason(upd.Reason); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *RemovalLineUseCase) Complete(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(s *WorkSession, m *workflow.RemovalLineMachine) error {
		if err := m.Complete(ctx, u.clock.Now()); err != nil {
			return err
		}
		u.log.Infow("[removal-line][usecase] resolved complete", "work_order_id", s.Order.ID, "wiring_type", m.Decision().WiringType)
		return nil
	})
}

func (u *RemovalLineUseCase) AssignAS(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(_ *WorkSession, m *workflow.RemovalLineMachine) error {
		return m.AssignAS(ctx)
	})
}

// SaveASTicket stages the AS ticket built from the work order context.
func (u *RemovalLineUseCase) SaveASTicket(ctx context.Context, workOrderID string, in ASTicketInput) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(s *WorkSession, m *workflow.RemovalLineMachine) error {
		now := u.clock.Now()
		hope := workflow.DefaultASHopeAt(now)
		if in.HopeAt != nil {
			hope = in.HopeAt.In(u.clock.Location())
		}
		if err := workflow.ValidateASHopeAt(hope, now); err != nil {
			return err
		}

		wo := s.Order
		phone := strings.TrimSpace(in.ContactPhone)
		if phone == "" {
			phone = wo.CustomerPhone
		}
		ticket := entities.ASTicket{
			ID:                 uuid.NewString(),
			WorkOrderID:        wo.ID,
			CustomerID:         wo.CustomerID,
			ContractID:         wo.ContractID,
			ServiceOfficeID:    wo.ServiceOfficeID,
			ReceiptID:          wo.ReceiptID,
			DetailCode:         m.Decision().Reason.ASDetailCode(),
			WorkDetailTypeCode: entities.ASWorkDetailTypeCode,
			ReceiptClass:       entities.ASReceiptClass,
			CarrierID:          entities.ASCarrierID,
			Emergency:          in.Emergency,
			Holiday:            in.Holiday,
			HopeAt:             hope,
			ContactPhone:       phone,
			Memo:               strings.TrimSpace(in.Memo),
			Address:            wo.Address,
			StagedAt:           now,
		}
		if err := m.SaveASTicket(ctx, ticket, now); err != nil {
			return err
		}
		u.log.Infow("[removal-line][usecase] AS ticket staged", "work_order_id", wo.ID, "ticket_id", ticket.ID, "detail_code", ticket.DetailCode, "hope_at", hope)
		return nil
	})
}

func (u *RemovalLineUseCase) CancelAS(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(_ *WorkSession, m *workflow.RemovalLineMachine) error {
		return m.CancelAS(ctx)
	})
}

// Edit reopens the tree; a prior registration no longer matches.
func (u *RemovalLineUseCase) Edit(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error) {
	return u.run(workOrderID, func(s *WorkSession, m *workflow.RemovalLineMachine) error {
		if err := m.Edit(ctx); err != nil {
			return err
		}
		s.RemovalLineRegistered = false
		return nil
	})
}

func (u *RemovalLineUseCase) run(workOrderID string, fn func(s *WorkSession, m *workflow.RemovalLineMachine) error) (entities.RemovalLineSnapshot, error) {
	var snap entities.RemovalLineSnapshot
	err := u.sessions.with(workOrderID, func(s *WorkSession) error {
		if s.RemovalLine == nil {
			return ErrRemovalLineNotApplicable
		}
		err := fn(s, s.RemovalLine)
		snap = removalLineSnapshot(s)
		return err
	})
	return snap, err
}

func removalLineSnapshot(s *WorkSession) entities.RemovalLineSnapshot {
	if s.RemovalLine == nil {
		return entities.RemovalLineSnapshot{Applicable: false}
	}
	snap := s.RemovalLine.Snapshot()
	snap.Registered = s.RemovalLineRegistered
	return snap
}
