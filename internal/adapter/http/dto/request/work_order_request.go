package request

import (
	"strings"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
)

// OpenWorkOrderRequest carries the work order as fetched by the client and
// the server-side equipment lists.
type OpenWorkOrderRequest struct {
	WorkOrder entities.WorkOrder      `json:"work_order"`
	Equipment entities.EquipmentLists `json:"equipment"`
}

// ResolveWorkOrder fills the id from the path when the body omits it. ok is
// false when the body names a different work order.
func (r OpenWorkOrderRequest) ResolveWorkOrder(pathID string) (entities.WorkOrder, bool) {
	wo := r.WorkOrder
	pathID = strings.TrimSpace(pathID)
	bodyID := strings.TrimSpace(wo.ID)
	if bodyID != "" && bodyID != pathID {
		return entities.WorkOrder{}, false
	}
	wo.ID = pathID
	return wo, true
}

type SuspensionRequest struct {
	ContractID string `json:"contract_id"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

func (r SuspensionRequest) ToInput() usecase.SuspensionInput {
	return usecase.SuspensionInput{ContractID: r.ContractID, StartDate: r.StartDate, EndDate: r.EndDate}
}
