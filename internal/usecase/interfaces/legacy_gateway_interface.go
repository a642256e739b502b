package interfaces

import (
	"context"

	"fieldops_completion/internal/domain/entities"
)

// The legacy backend is reached through these ports. Transport concerns
// (timeouts, retry of reads) live in the implementation.

// IBillingGateway covers the hotbill reads and the billing simulation.
type IBillingGateway interface {
	FetchBillingSummary(ctx context.Context, customerID, receiptID string) ([]entities.BillingDetail, error)
	FetchBillingByContract(ctx context.Context, q entities.BillingContractQuery) ([]entities.BillingContract, error)
	FetchBillingByCharge(ctx context.Context, q entities.BillingChargeQuery) ([]entities.ChargeLine, error)
	RunBillingSimulation(ctx context.Context, req entities.SimulationRequest) (entities.SimulationResult, error)
}

// IWorkGateway covers the mutating work-order calls.
type IWorkGateway interface {
	RegisterRemovalLine(ctx context.Context, workOrder entities.WorkOrder, decision entities.RemovalLineDecision) error
	CreateASTicket(ctx context.Context, ticket entities.ASTicket) error
	AdjustSuspensionPeriod(ctx context.Context, edit entities.SuspensionEdit) error
	SubmitCompletion(ctx context.Context, req entities.CompletionRequest) (entities.CompletionResponse, error)
}

// ICertificationGateway covers CL-08 / CL-06 and the target code lists.
type ICertificationGateway interface {
	QueryCertification(ctx context.Context, contractID, customerID, serviceOfficeID string) (entities.CertResult, error)
	RegisterCertificationTermination(ctx context.Context, contractID, customerID, serviceOfficeID string) (entities.CertRegistration, error)
	ListCertifiedProducts(ctx context.Context) ([]string, error)
	ListCertifiedOffices(ctx context.Context) ([]string, error)
}

type ISignalGateway interface {
	SendSignal(ctx context.Context, req entities.SignalRequest) (entities.SignalResponse, error)
	ListSTBProducts(ctx context.Context) ([]string, error)
}

type IEquipmentLookupGateway interface {
	LookupEquipmentHistory(ctx context.Context, serialNo, mac string) (*entities.EquipmentRecord, error)
}
