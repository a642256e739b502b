package usecase

import (
	"context"
	"fmt"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const StepCertification = "certification"

// ICertificationUseCase runs the CL-08 query and the conditional CL-06
// termination for one submission attempt.
type ICertificationUseCase interface {
	Evaluate(ctx context.Context, wo entities.WorkOrder, prior entities.CertificationState, attemptID string) (entities.CertificationState, error)
}

type CertificationUseCase struct {
	gateway interfaces.ICertificationGateway
	policy  entities.Policy
	log     *zap.SugaredLogger
}

var _ ICertificationUseCase = (*CertificationUseCase)(nil)

func NewCertificationUseCase(gateway interfaces.ICertificationGateway, policy entities.Policy, log *zap.SugaredLogger) *CertificationUseCase {
	return &CertificationUseCase{gateway: gateway, policy: policy, log: orNop(log)}
}

// Evaluate returns the new certification state. A termination already
// registered in prior is not sent again.
func (u *CertificationUseCase) Evaluate(ctx context.Context, wo entities.WorkOrder, prior entities.CertificationState, attemptID string) (entities.CertificationState, error) {
	if !u.policy.CertificationApplies(wo) {
		return entities.CertificationState{Applicable: false}, nil
	}
	if prior.Registered {
		return prior, nil
	}

	state := entities.CertificationState{Applicable: true, AttemptID: attemptID}
	res, err := u.gateway.QueryCertification(ctx, wo.ContractID, wo.CustomerID, wo.ServiceOfficeID)
	if err != nil {
		u.log.Warnw("[certification][usecase] query failed, treated as not certified", "work_order_id", wo.ID, "contract_id", wo.ContractID, "error", err)
		return state, nil
	}
	state.Queried = &res
	state.Certified = workflow.IsCertified(&res, wo.ContractID)
	if !state.Certified {
		u.log.Infow("[certification][usecase] not certified", "work_order_id", wo.ID, "contract_id", wo.ContractID, "cert_error", res.Error)
		return state, nil
	}

	products, err := u.gateway.ListCertifiedProducts(ctx)
	if err != nil {
		return state, &BlockingError{Step: StepCertification, Reason: "certified product list unavailable", Err: err}
	}
	offices, err := u.gateway.ListCertifiedOffices(ctx)
	if err != nil {
		return state, &BlockingError{Step: StepCertification, Reason: "certified office list unavailable", Err: err}
	}

	if workflow.IsHandOff(wo, products, offices) {
		state.HandOff = true
		u.log.Infow("[certification][usecase] hand-off, termination skipped", "work_order_id", wo.ID, "product", wo.TargetProductCode(), "service_office_id", wo.TargetServiceOfficeID())
		return state, nil
	}

	// A transferred order is terminated against the post-transfer SO.
	reg, err := u.gateway.RegisterCertificationTermination(ctx, wo.ContractID, wo.CustomerID, wo.TargetServiceOfficeID())
	if err != nil {
		return state, &BlockingError{Step: StepCertification, Reason: "termination registration failed", Err: err}
	}
	if reg.Error != "" {
		return state, &BlockingError{Step: StepCertification, Reason: fmt.Sprintf("termination rejected: %s", reg.Error)}
	}
	state.Registered = true
	u.log.Infow("[certification][usecase] termination registered", "work_order_id", wo.ID, "contract_id", wo.ContractID, "attempt_id", attemptID)
	return state, nil
}
