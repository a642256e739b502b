package workflow

import (
	"context"
	"fmt"
	"time"

	"fieldops_completion/internal/domain/entities"

	"github.com/looplab/fsm"
)

const (
	RemovalLineEventComplete = "complete"
	RemovalLineEventAssignAS = "assign_as"
	RemovalLineEventSaveAS   = "save_as"
	RemovalLineEventCancelAS = "cancel_as"
	RemovalLineEventEdit     = "edit"
)

func rl(s entities.RemovalLineStatus) string { return string(s) }

// RemovalLineTransitions is the transition table of the removal-line tree.
var RemovalLineTransitions = []fsm.EventDesc{
	{Name: RemovalLineEventComplete, Src: []string{rl(entities.RemovalLineEditing)}, Dst: rl(entities.RemovalLineCompleted)},
	{Name: RemovalLineEventAssignAS, Src: []string{rl(entities.RemovalLineEditing)}, Dst: rl(entities.RemovalLineASCapture)},
	{Name: RemovalLineEventSaveAS, Src: []string{rl(entities.RemovalLineASCapture)}, Dst: rl(entities.RemovalLineASAssigned)},
	{Name: RemovalLineEventCancelAS, Src: []string{rl(entities.RemovalLineASCapture)}, Dst: rl(entities.RemovalLineEditing)},
	{Name: RemovalLineEventEdit, Src: []string{rl(entities.RemovalLineCompleted), rl(entities.RemovalLineASAssigned), rl(entities.RemovalLineASCapture)}, Dst: rl(entities.RemovalLineEditing)},
}

// RemovalLineMachine walks wiring type, outcome and reason, then exits
// through Complete or the AS branch.
type RemovalLineMachine struct {
	f        *fsm.FSM
	decision entities.RemovalLineDecision
	ticket   *entities.ASTicket
}

func NewRemovalLineMachine() *RemovalLineMachine {
	return &RemovalLineMachine{
		f:        fsm.NewFSM(rl(entities.RemovalLineEditing), RemovalLineTransitions, fsm.Callbacks{}),
		decision: entities.RemovalLineDecision{Outcome: entities.OutcomeComplete},
	}
}

func (m *RemovalLineMachine) Status() entities.RemovalLineStatus {
	return entities.RemovalLineStatus(m.f.Current())
}

// SetWiringType resets the outcome to complete and clears the reason.
func (m *RemovalLineMachine) SetWiringType(w entities.WiringType) error {
	if err := m.editable(); err != nil {
		return err
	}
	if !w.Valid() {
		return ErrInvalidWiringType
	}
	m.decision.WiringType = w
	m.decision.Outcome = entities.OutcomeComplete
	m.decision.Reason = ""
	return nil
}

func (m *RemovalLineMachine) SetOutcome(o entities.RemovalOutcome) error {
	if err := m.editable(); err != nil {
		return err
	}
	if m.decision.WiringType == "" {
		return ErrWiringTypeRequired
	}
	if !o.Valid() {
		return ErrInvalidOutcome
	}
	m.decision.Outcome = o
	if o == entities.OutcomeComplete {
		m.decision.Reason = ""
	}
	return nil
}

func (m *RemovalLineMachine) SetReason(r entities.IncompleteReason) error {
	if err := m.editable(); err != nil {
		return err
	}
	if m.decision.Outcome != entities.OutcomeIncomplete {
		return ErrReasonNotApplicable
	}
	if !r.Valid() {
		return ErrInvalidReason
	}
	m.decision.Reason = r
	return nil
}

func (m *RemovalLineMachine) CanComplete() bool {
	return m.Status() == entities.RemovalLineEditing &&
		m.decision.WiringType.Valid() &&
		m.decision.Outcome == entities.OutcomeComplete
}

func (m *RemovalLineMachine) CanAssignAS() bool {
	return m.Status() == entities.RemovalLineEditing &&
		m.decision.Outcome == entities.OutcomeIncomplete &&
		m.decision.Reason.Valid()
}

func (m *RemovalLineMachine) Complete(ctx context.Context, now time.Time) error {
	if !m.CanComplete() {
		return fmt.Errorf("%w: complete requires wiring type and complete outcome", ErrTransitionNotAllowed)
	}
	if err := m.f.Event(ctx, RemovalLineEventComplete); err != nil {
		return err
	}
	m.decision.Resolved = true
	m.decision.DecidedAt = now
	return nil
}

// AssignAS opens the AS ticket capture step.
func (m *RemovalLineMachine) AssignAS(ctx context.Context) error {
	if !m.CanAssignAS() {
		return fmt.Errorf("%w: AS assignment requires incomplete outcome and reason", ErrTransitionNotAllowed)
	}
	return m.f.Event(ctx, RemovalLineEventAssignAS)
}

// SaveASTicket stages the ticket and resolves the decision. The ticket is
// created by the completion pipeline after commit.
func (m *RemovalLineMachine) SaveASTicket(ctx context.Context, ticket entities.ASTicket, now time.Time) error {
	if err := m.fire(ctx, RemovalLineEventSaveAS); err != nil {
		return err
	}
	m.ticket = &ticket
	m.decision.Resolved = true
	m.decision.DecidedAt = now
	return nil
}

func (m *RemovalLineMachine) CancelAS(ctx context.Context) error {
	return m.fire(ctx, RemovalLineEventCancelAS)
}

// Edit reopens the tree. The staged ticket is discarded.
func (m *RemovalLineMachine) Edit(ctx context.Context) error {
	if err := m.fire(ctx, RemovalLineEventEdit); err != nil {
		return err
	}
	m.decision.Resolved = false
	m.decision.DecidedAt = time.Time{}
	m.ticket = nil
	return nil
}

func (m *RemovalLineMachine) Decision() entities.RemovalLineDecision {
	return m.decision
}

func (m *RemovalLineMachine) StagedTicket() *entities.ASTicket {
	if m.ticket == nil {
		return nil
	}
	t := *m.ticket
	return &t
}

func (m *RemovalLineMachine) Snapshot() entities.RemovalLineSnapshot {
	return entities.RemovalLineSnapshot{
		Applicable:   true,
		Status:       m.Status(),
		Decision:     m.decision,
		CanComplete:  m.CanComplete(),
		CanAssignAS:  m.CanAssignAS(),
		StagedTicket: m.StagedTicket(),
	}
}

func (m *RemovalLineMachine) editable() error {
	if m.Status() != entities.RemovalLineEditing {
		return ErrRemovalLineLocked
	}
	return nil
}

func (m *RemovalLineMachine) fire(ctx context.Context, event string) error {
	if !m.f.Can(event) {
		return fmt.Errorf("%w: removal line %s from %s", ErrTransitionNotAllowed, event, m.f.Current())
	}
	return m.f.Event(ctx, event)
}
