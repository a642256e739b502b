package workflow

import (
	"slices"

	"fieldops_completion/internal/domain/entities"
)

// IsCertified holds when CL-08 returned a clean binding for the contract.
func IsCertified(res *entities.CertResult, contractID string) bool {
	return res != nil && res.Error == "" && res.ContractID != "" && res.ContractID == contractID
}

// IsHandOff reports that the post-transfer product and SO are both
// certification targets, so CL-06 termination must not be sent.
func IsHandOff(wo entities.WorkOrder, certifiedProducts, certifiedOffices []string) bool {
	return slices.Contains(certifiedProducts, wo.TargetProductCode()) &&
		slices.Contains(certifiedOffices, wo.TargetServiceOfficeID())
}
