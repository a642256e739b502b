package workflow

import (
	"context"
	"fmt"

	"fieldops_completion/internal/domain/entities"

	"github.com/looplab/fsm"
)

const (
	HotbillEventLoadNormal      = "load_normal"
	HotbillEventLoadRecalc      = "load_recalc"
	HotbillEventNotApplicable   = "not_applicable"
	HotbillEventConfirm         = "confirm"
	HotbillEventRecalculate     = "recalculate"
	HotbillEventRecalcSucceeded = "recalc_succeeded"
	HotbillEventRecalcFailed    = "recalc_failed"
	HotbillEventSkip            = "skip"
)

func st(s entities.HotbillStatus) string { return string(s) }

// HotbillTransitions is the full transition table of the hotbill flow.
var HotbillTransitions = []fsm.EventDesc{
	{Name: HotbillEventLoadNormal, Src: []string{st(entities.HotbillLoading)}, Dst: st(entities.HotbillNormalPending)},
	{Name: HotbillEventLoadRecalc, Src: []string{st(entities.HotbillLoading)}, Dst: st(entities.HotbillRecalcNeeded)},
	{Name: HotbillEventNotApplicable, Src: []string{st(entities.HotbillLoading)}, Dst: st(entities.HotbillNotApplicable)},
	{Name: HotbillEventConfirm, Src: []string{st(entities.HotbillNormalPending)}, Dst: st(entities.HotbillNormalConfirmed)},
	{Name: HotbillEventConfirm, Src: []string{st(entities.HotbillRecalcDonePending)}, Dst: st(entities.HotbillRecalcConfirmed)},
	{Name: HotbillEventRecalculate, Src: []string{st(entities.HotbillRecalcNeeded), st(entities.HotbillError)}, Dst: st(entities.HotbillRecalcInProgress)},
	{Name: HotbillEventRecalcSucceeded, Src: []string{st(entities.HotbillRecalcInProgress)}, Dst: st(entities.HotbillRecalcDonePending)},
	{Name: HotbillEventRecalcFailed, Src: []string{st(entities.HotbillRecalcInProgress)}, Dst: st(entities.HotbillError)},
	{Name: HotbillEventSkip, Src: []string{st(entities.HotbillRecalcNeeded), st(entities.HotbillError)}, Dst: st(entities.HotbillRecalcSkipped)},
}

// HotbillData is what a billing fetch or simulation yields.
type HotbillData struct {
	HasHistory       bool
	ContractID       string
	Lines            []entities.ChargeLine
	BillingSessionID string
}

// NeedsRecalculation compares fixed-width YYYYMMDD keys lexicographically.
func NeedsRecalculation(hasHistory bool, targetDate, today string) bool {
	return !hasHistory || targetDate > today
}

// HotbillMachine tracks the billing confirmation flow of one work order.
// It is not safe for concurrent use; callers serialize per work order.
type HotbillMachine struct {
	f          *fsm.FSM
	targetDate string
	today      string
	applicable bool
	needsRecal bool
	intent     bool
	data       HotbillData
	lastErr    string
}

// NewHotbillMachine starts in Loading. observe, when set, is called on every
// state entry.
func NewHotbillMachine(targetDate, today string, observe func(to entities.HotbillStatus)) *HotbillMachine {
	m := &HotbillMachine{targetDate: targetDate, today: today, applicable: true}
	m.f = fsm.NewFSM(
		st(entities.HotbillLoading),
		HotbillTransitions,
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if observe != nil {
					observe(entities.HotbillStatus(e.Dst))
				}
			},
		},
	)
	return m
}

func (m *HotbillMachine) Status() entities.HotbillStatus {
	return entities.HotbillStatus(m.f.Current())
}

// FutureDated reports the termination date is after today.
func (m *HotbillMachine) FutureDated() bool {
	return m.targetDate > m.today
}

func (m *HotbillMachine) MarkNotApplicable(ctx context.Context) error {
	if err := m.fire(ctx, HotbillEventNotApplicable); err != nil {
		return err
	}
	m.applicable = false
	return nil
}

// ApplyLoad resolves the Loading state. A failed load is treated as
// needing recalculation.
func (m *HotbillMachine) ApplyLoad(ctx context.Context, data HotbillData, loadErr error) error {
	if loadErr != nil {
		m.lastErr = loadErr.Error()
		m.needsRecal = true
		return m.fire(ctx, HotbillEventLoadRecalc)
	}
	m.data = data
	m.needsRecal = NeedsRecalculation(data.HasHistory, m.targetDate, m.today)
	if m.needsRecal {
		return m.fire(ctx, HotbillEventLoadRecalc)
	}
	return m.fire(ctx, HotbillEventLoadNormal)
}

func (m *HotbillMachine) SetRecalcIntent(intent bool) error {
	s := m.Status()
	if !m.FutureDated() || (s != entities.HotbillRecalcNeeded && s != entities.HotbillError) {
		return ErrRecalcIntentNotApplicable
	}
	m.intent = intent
	return nil
}

func (m *HotbillMachine) CanRecalculate() bool {
	if !m.f.Can(HotbillEventRecalculate) {
		return false
	}
	return !m.FutureDated() || m.intent
}

func (m *HotbillMachine) BeginRecalculation(ctx context.Context) error {
	if m.f.Can(HotbillEventRecalculate) && m.FutureDated() && !m.intent {
		return ErrRecalcIntentRequired
	}
	return m.fire(ctx, HotbillEventRecalculate)
}

// FinishRecalculation records the simulation outcome and the refreshed
// charge breakdown.
func (m *HotbillMachine) FinishRecalculation(ctx context.Context, data HotbillData, recalcErr error) error {
	if recalcErr != nil {
		m.lastErr = recalcErr.Error()
		return m.fire(ctx, HotbillEventRecalcFailed)
	}
	m.lastErr = ""
	m.data = data
	return m.fire(ctx, HotbillEventRecalcSucceeded)
}

func (m *HotbillMachine) Confirm(ctx context.Context) error {
	return m.fire(ctx, HotbillEventConfirm)
}

func (m *HotbillMachine) Skip(ctx context.Context) error {
	return m.fire(ctx, HotbillEventSkip)
}

func (m *HotbillMachine) Snapshot() entities.HotbillSnapshot {
	s := m.Status()
	lines := entities.BillableChargeLines(m.data.Lines)
	return entities.HotbillSnapshot{
		Status:             s,
		Applicable:         m.applicable,
		HasHistory:         m.data.HasHistory,
		TargetDate:         m.targetDate,
		Today:              m.today,
		NeedsRecalculation: m.needsRecal,
		FutureDated:        m.FutureDated(),
		RecalcIntent:       m.intent,
		ContractID:         m.data.ContractID,
		ChargeLines:        lines,
		Total:              entities.ChargeTotal(lines),
		BillingSessionID:   m.data.BillingSessionID,
		LastError:          m.lastErr,
		Confirmed:          s == entities.HotbillNormalConfirmed || s == entities.HotbillRecalcConfirmed,
		Ready:              s.Ready(),
	}
}

func (m *HotbillMachine) fire(ctx context.Context, event string) error {
	if !m.f.Can(event) {
		return fmt.Errorf("%w: hotbill %s from %s", ErrTransitionNotAllowed, event, m.f.Current())
	}
	return m.f.Event(ctx, event)
}
