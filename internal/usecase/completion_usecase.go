package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/infrastructure/metrics"
	"fieldops_completion/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pipeline step names, used in BlockingError and CompletionOutcome.Steps.
const (
	StepValidation  = "validation"
	StepRemovalLine = "removal_line"
	StepSuspension  = "suspension"
	StepSubmit      = "submit"
	StepDraftClear  = "draft_clear"
	StepASTicket    = "as_ticket"
)

// SignalFailureConfirmer answers the operator prompt raised by an
// overridable signal failure.
type SignalFailureConfirmer interface {
	ConfirmSignalFailure(ctx context.Context, message string) bool
}

// ConfirmAnswer is a prompt answered ahead of time.
type ConfirmAnswer bool

func (a ConfirmAnswer) ConfirmSignalFailure(context.Context, string) bool { return bool(a) }

type SubmitCommand struct {
	WorkOrderID string
	WorkerID    string
	Fixed       entities.FixedFields
	Confirmer   SignalFailureConfirmer
}

// ICompletionUseCase runs the completion pipeline.
type ICompletionUseCase interface {
	Validate(ctx context.Context, workOrderID string, fixed entities.FixedFields) ([]string, error)
	Submit(ctx context.Context, cmd SubmitCommand) (entities.CompletionOutcome, error)
}

type CompletionUseCase struct {
	sessions      *SessionRegistry
	store         interfaces.IEquipmentStore
	drafts        interfaces.IDraftRepository
	work          interfaces.IWorkGateway
	certification ICertificationUseCase
	signal        ISignalUseCase
	policy        entities.Policy
	clock         Clock
	log           *zap.SugaredLogger
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

func NewCompletionUseCase(
	sessions *SessionRegistry,
	store interfaces.IEquipmentStore,
	drafts interfaces.IDraftRepository,
	work interfaces.IWorkGateway,
	certification ICertificationUseCase,
	signal ISignalUseCase,
	policy entities.Policy,
	clock Clock,
	log *zap.SugaredLogger,
) *CompletionUseCase {
	return &CompletionUseCase{
		sessions:      sessions,
		store:         store,
		drafts:        drafts,
		work:          work,
		certification: certification,
		signal:        signal,
		policy:        policy,
		clock:         clock,
		log:           orNop(log),
	}
}

// Validate runs the gate only. No remote call is made.
func (u *CompletionUseCase) Validate(_ context.Context, workOrderID string, fixed entities.FixedFields) ([]string, error) {
	var warnings []string
	err := u.sessions.with(workOrderID, func(s *WorkSession) error {
		agg, _ := u.store.Get(s.Order.ID)
		var err error
		warnings, err = u.gate(s, agg, withOrderDefaults(fixed, s.Order))
		return err
	})
	return warnings, err
}

// Submit runs the pipeline once. Concurrent submissions for the same work
// order are refused. The run is detached from ctx cancellation; steps
// already applied by an earlier failed run are not repeated.
func (u *CompletionUseCase) Submit(ctx context.Context, cmd SubmitCommand) (out entities.CompletionOutcome, err error) {
	s, err := u.sessions.Get(cmd.WorkOrderID)
	if err != nil {
		return entities.CompletionOutcome{}, err
	}
	if !s.submit.TryLock() {
		return entities.CompletionOutcome{}, ErrSubmissionInProgress
	}
	defer s.submit.Unlock()

	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return entities.CompletionOutcome{}, ErrWorkOrderCompleted
	}

	wo := s.Order
	attemptID := uuid.NewString()
	log := u.log.With("work_order_id", wo.ID, "attempt_id", attemptID)
	defer func() {
		label := outcomeLabel(err)
		metrics.PipelineRuns.WithLabelValues(label).Inc()
		if err != nil {
			log.Warnw("[completion][usecase] submit aborted", "outcome", label, "error", err)
		}
	}()

	log.Infow("[completion][usecase] submit start", "work_code", wo.WorkCode, "worker_id", cmd.WorkerID)
	out = entities.CompletionOutcome{WorkOrderID: wo.ID, AttemptID: attemptID}

	fixed := withOrderDefaults(cmd.Fixed, wo)
	agg, _ := u.store.Get(wo.ID)
	warnings, err := u.gate(s, agg, fixed)
	if err != nil {
		return entities.CompletionOutcome{}, err
	}
	out.Warnings = warnings

	if err := u.registerRemovalLine(ctx, s); err != nil {
		return entities.CompletionOutcome{}, err
	}
	out.Steps = append(out.Steps, StepRemovalLine)

	if s.Suspension != nil && !s.Suspension.Committed {
		if err := u.work.AdjustSuspensionPeriod(ctx, *s.Suspension); err != nil {
			return entities.CompletionOutcome{}, &BlockingError{Step: StepSuspension, Reason: "suspension period adjustment failed", Err: err}
		}
		s.Suspension.Committed = true
		log.Infow("[completion][usecase] suspension committed", "contract_id", s.Suspension.ContractID, "days", s.Suspension.Days)
	}
	out.Steps = append(out.Steps, StepSuspension)

	cert, err := u.certification.Evaluate(ctx, wo, s.Certification, attemptID)
	s.Certification = cert
	if err != nil {
		return entities.CompletionOutcome{}, err
	}
	out.Steps = append(out.Steps, StepCertification)

	note, err := u.transmitSignal(ctx, s, agg, cmd.Confirmer)
	if err != nil {
		return entities.CompletionOutcome{}, err
	}
	if note != "" {
		out.PartialFailures = append(out.PartialFailures, note)
	}
	out.Steps = append(out.Steps, StepSignal)

	req := u.buildRequest(s, agg, fixed, cmd.WorkerID, note)
	resp, err := u.work.SubmitCompletion(ctx, req)
	if err != nil {
		return entities.CompletionOutcome{}, &SubmissionError{Message: err.Error(), Err: err}
	}
	if resp.Status != "SUCCESS" && resp.Status != "OK" {
		msg := resp.Message
		if msg == "" {
			msg = resp.Status
		}
		return entities.CompletionOutcome{}, &SubmissionError{Message: msg}
	}
	out.Message = resp.Message
	out.Steps = append(out.Steps, StepSubmit)
	out.CompletedAt = u.clock.Now()
	log.Infow("[completion][usecase] committed", "removed", len(req.Removed), "installed", len(req.Installed))

	if err := u.drafts.Clear(ctx, wo.ID); err != nil {
		log.Warnw("[completion][usecase] draft clear failed", "error", err)
		out.PostCommitErrors = append(out.PostCommitErrors, fmt.Sprintf("%s: %v", StepDraftClear, err))
	} else {
		out.Steps = append(out.Steps, StepDraftClear)
	}

	ticket := u.stagedTicket(s)
	s.done = true
	u.sessions.Complete(wo.ID)
	u.store.Delete(wo.ID)

	if ticket != nil {
		ticket.WorkerID = cmd.WorkerID
		if err := u.createASTicket(ctx, wo, s.RemovalLine.Decision(), *ticket); err != nil {
			log.Warnw("[completion][usecase] AS ticket creation failed", "ticket_id", ticket.ID, "error", err)
			out.PostCommitErrors = append(out.PostCommitErrors, fmt.Sprintf("%s: %v", StepASTicket, err))
		} else {
			out.ASTicketID = ticket.ID
			out.Steps = append(out.Steps, StepASTicket)
		}
	}

	log.Infow("[completion][usecase] submit done", "steps", out.Steps, "post_commit_errors", len(out.PostCommitErrors))
	return out, nil
}

// gate checks the broadcast lock first, then collects every field check.
func (u *CompletionUseCase) gate(s *WorkSession, agg entities.EquipmentAggregate, fixed entities.FixedFields) ([]string, error) {
	wo := s.Order
	removed := agg.RemovedItems()
	for _, it := range removed {
		if it.CompositionClass == u.policy.BroadcastCompositionClass {
			return nil, &BlockingError{Step: StepValidation, Reason: fmt.Sprintf("broadcast product equipment %s cannot be completed here", it.ID)}
		}
	}

	var msgs []string
	required := []struct{ name, value string }{
		{"customer_relation", fixed.CustomerRelation},
		{"network_class", fixed.NetworkClass},
		{"wiring_method", fixed.WiringMethod},
		{"install_type", fixed.InstallType},
		{"completion_date", fixed.CompletionDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			msgs = append(msgs, fmt.Sprintf("%s is required", f.name))
		}
	}
	if fixed.CompletionDate != "" {
		if _, err := entities.ParseDateKey(fixed.CompletionDate, u.clock.Location()); err != nil {
			msgs = append(msgs, "completion_date must be YYYYMMDD")
		}
	}
	if u.policy.RequiresCustomerContact(wo) {
		if strings.TrimSpace(fixed.CustomerName) == "" {
			msgs = append(msgs, "customer_name is required")
		}
		if strings.TrimSpace(fixed.CustomerPhone) == "" {
			msgs = append(msgs, "customer_phone is required")
		}
	}
	if u.policy.RequiresRemovalInstallType(wo) && fixed.InstallType != u.policy.RemovalInstallType {
		msgs = append(msgs, fmt.Sprintf("install_type must be %s", u.policy.RemovalInstallType))
	}
	if st := s.Hotbill.Status(); !st.Ready() {
		msgs = append(msgs, fmt.Sprintf("hotbill must be confirmed or skipped (status %s)", st))
	}
	if s.RemovalLine != nil && !s.RemovalLine.Decision().Resolved {
		msgs = append(msgs, "removal line decision is not resolved")
	}
	if !u.policy.EquipmentExempt(wo) && !agg.HasDisposition() {
		msgs = append(msgs, "no equipment disposition recorded")
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	var warnings []string
	if wo.TerminationHopeDate != "" && fixed.CompletionDate < wo.TerminationHopeDate {
		warnings = append(warnings, "completion date is earlier than the termination hope date")
	}
	return warnings, nil
}

// registerRemovalLine sends a complete decision once per session. The
// AS path registers after commit together with the ticket.
func (u *CompletionUseCase) registerRemovalLine(ctx context.Context, s *WorkSession) error {
	if s.RemovalLine == nil || s.RemovalLineRegistered {
		return nil
	}
	d := s.RemovalLine.Decision()
	if !d.Resolved || d.Outcome != entities.OutcomeComplete {
		return nil
	}
	if err := u.work.RegisterRemovalLine(ctx, s.Order, d); err != nil {
		return &BlockingError{Step: StepRemovalLine, Reason: "removal line registration failed", Err: err}
	}
	s.RemovalLineRegistered = true
	return nil
}

// transmitSignal returns the partial-failure note when the operator
// overrode a failure.
func (u *CompletionUseCase) transmitSignal(ctx context.Context, s *WorkSession, agg entities.EquipmentAggregate, confirmer SignalFailureConfirmer) (string, error) {
	if s.Signal.Sent {
		return "", nil
	}
	if s.Signal.Result == entities.SignalOverridableFailure && confirmed(ctx, confirmer, s.Signal.Message) {
		s.Signal.Overridden = true
		return overrideNote(s.Signal.Message), nil
	}

	attempt, err := u.signal.Transmit(ctx, workflow.SignalPlanInput{
		Order:                s.Order,
		Removed:              agg.RemovedItems(),
		ProductComposition:   agg.RemovalCandidates,
		Installed:            agg.InstalledItems(),
		CustomerEquipment:    agg.CustomerEquipment,
		AlreadySent:          s.Signal.Sent,
		CertificationHandled: s.Certification.Applicable && s.Certification.Certified,
	})
	s.Signal = attempt
	if err == nil {
		return "", nil
	}

	var ce *SignalConfirmationError
	if errors.As(err, &ce) && confirmed(ctx, confirmer, ce.Message) {
		s.Signal.Overridden = true
		return overrideNote(ce.Message), nil
	}
	return "", err
}

func (u *CompletionUseCase) buildRequest(s *WorkSession, agg entities.EquipmentAggregate, fixed entities.FixedFields, workerID, note string) entities.CompletionRequest {
	wo := s.Order
	req := entities.CompletionRequest{
		WorkOrderID:     wo.ID,
		ReceiptID:       wo.ReceiptID,
		CustomerID:      wo.CustomerID,
		ContractID:      wo.ContractID,
		ServiceOfficeID: wo.ServiceOfficeID,
		WorkCode:        wo.WorkCode,
		WorkerID:        workerID,
		Fixed:           fixed,
		Installed:       agg.InstalledItems(),
		Removed:         agg.RemovedItems(),
		ReuseAll:        agg.ReuseAll,
		HotbillStatus:   s.Hotbill.Status(),
		SignalNote:      note,
	}
	if s.RemovalLine != nil {
		d := s.RemovalLine.Decision()
		req.RemovalLine = &d
	}
	return req
}

func (u *CompletionUseCase) stagedTicket(s *WorkSession) *entities.ASTicket {
	if s.RemovalLine == nil {
		return nil
	}
	d := s.RemovalLine.Decision()
	if !d.Resolved || d.Outcome != entities.OutcomeIncomplete {
		return nil
	}
	return s.RemovalLine.StagedTicket()
}

func (u *CompletionUseCase) createASTicket(ctx context.Context, wo entities.WorkOrder, d entities.RemovalLineDecision, ticket entities.ASTicket) error {
	if err := u.work.RegisterRemovalLine(ctx, wo, d); err != nil {
		return fmt.Errorf("register removal line: %w", err)
	}
	if err := u.work.CreateASTicket(ctx, ticket); err != nil {
		return fmt.Errorf("create AS ticket: %w", err)
	}
	return nil
}

func withOrderDefaults(fixed entities.FixedFields, wo entities.WorkOrder) entities.FixedFields {
	if strings.TrimSpace(fixed.CustomerName) == "" {
		fixed.CustomerName = wo.CustomerName
	}
	if strings.TrimSpace(fixed.CustomerPhone) == "" {
		fixed.CustomerPhone = wo.CustomerPhone
	}
	fixed.Memo = strings.TrimSpace(fixed.Memo)
	return fixed
}

func confirmed(ctx context.Context, c SignalFailureConfirmer, message string) bool {
	return c != nil && c.ConfirmSignalFailure(ctx, message)
}

func overrideNote(message string) string {
	return fmt.Sprintf("signal failed and was overridden by the operator: %s", message)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCompleted
	case errors.Is(err, ErrValidationFailed):
		return metrics.OutcomeValidationFailed
	case errors.Is(err, ErrBlockingFailure):
		return metrics.OutcomeBlocked
	case errors.Is(err, ErrSignalConfirmationRequired):
		return metrics.OutcomeConfirmationRequired
	case errors.Is(err, ErrSubmissionRejected):
		return metrics.OutcomeSubmissionFailed
	default:
		return metrics.OutcomeError
	}
}
