package usecase

import (
	"context"
	"fmt"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/infrastructure/metrics"
	"fieldops_completion/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const StepSignal = "signal"

// ISignalUseCase plans, sends and classifies the downstream signal.
type ISignalUseCase interface {
	Transmit(ctx context.Context, in workflow.SignalPlanInput) (entities.SignalAttempt, error)
}

type SignalUseCase struct {
	gateway interfaces.ISignalGateway
	policy  entities.Policy
	clock   Clock
	log     *zap.SugaredLogger
}

var _ ISignalUseCase = (*SignalUseCase)(nil)

func NewSignalUseCase(gateway interfaces.ISignalGateway, policy entities.Policy, clock Clock, log *zap.SugaredLogger) *SignalUseCase {
	return &SignalUseCase{gateway: gateway, policy: policy, clock: clock, log: orNop(log)}
}

// Transmit returns the attempt record. A Blocking failure comes back as
// *BlockingError and an Overridable one as *SignalConfirmationError; the
// attempt is filled in both cases.
func (u *SignalUseCase) Transmit(ctx context.Context, in workflow.SignalPlanInput) (entities.SignalAttempt, error) {
	wo := in.Order
	if !in.AlreadySent && !in.CertificationHandled {
		stb, err := u.gateway.ListSTBProducts(ctx)
		if err != nil {
			u.log.Warnw("[signal][usecase] STB product list unavailable, using generic removal", "work_order_id", wo.ID, "error", err)
		}
		in.STBProducts = stb
	}

	plan := workflow.PlanSignal(u.policy, in)
	if !plan.Send {
		u.log.Infow("[signal][usecase] skipped", "work_order_id", wo.ID, "reason", plan.SkipReason)
		metrics.SignalOutcomes.WithLabelValues(string(entities.SignalSkipped)).Inc()
		return entities.SignalAttempt{Result: entities.SignalSkipped, SkipReason: plan.SkipReason}, nil
	}

	attempt := entities.SignalAttempt{MessageType: plan.Request.MessageType, AttemptedAt: u.clock.Now()}
	resp, err := u.gateway.SendSignal(ctx, plan.Request)
	switch {
	case err != nil:
		attempt.Message = err.Error()
	case workflow.SignalSucceeded(resp):
		attempt.Sent = true
		attempt.Result = entities.SignalSuccess
		attempt.Message = resp.Message
		metrics.SignalOutcomes.WithLabelValues(string(attempt.Result)).Inc()
		u.log.Infow("[signal][usecase] sent", "work_order_id", wo.ID, "message_type", attempt.MessageType)
		return attempt, nil
	default:
		attempt.Message = resp.Message
		if attempt.Message == "" {
			attempt.Message = resp.Status
		}
	}

	attempt.Result = workflow.ClassifySignalFailure(u.policy, wo, attempt.Message)
	metrics.SignalOutcomes.WithLabelValues(string(attempt.Result)).Inc()
	u.log.Warnw("[signal][usecase] send failed", "work_order_id", wo.ID, "message_type", attempt.MessageType, "result", attempt.Result, "message", attempt.Message)

	if attempt.Result == entities.SignalBlockingFailure {
		return attempt, &BlockingError{Step: StepSignal, Reason: fmt.Sprintf("signal failed: %s", attempt.Message), Err: err}
	}
	return attempt, &SignalConfirmationError{Message: attempt.Message}
}
