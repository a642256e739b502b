package response

import (
	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
)

type WorkOrderResponse struct {
	WorkOrderID   string                               `json:"work_order_id"`
	Order         entities.WorkOrder                   `json:"order"`
	Equipment     EquipmentResponse                    `json:"equipment"`
	Hotbill       HotbillResponse                      `json:"hotbill"`
	RemovalLine   entities.RemovalLineSnapshot         `json:"removal_line"`
	Certification entities.CertificationState          `json:"certification"`
	Signal        entities.SignalAttempt               `json:"signal"`
	Suspension    *entities.SuspensionEdit             `json:"suspension,omitempty"`
	History       map[string]*entities.EquipmentRecord `json:"history,omitempty"`
}

func FromWorkOrderView(v usecase.WorkOrderView) WorkOrderResponse {
	return WorkOrderResponse{
		WorkOrderID:   v.Order.ID,
		Order:         v.Order,
		Equipment:     FromEquipmentAggregate(v.Equipment),
		Hotbill:       FromHotbillSnapshot(v.Hotbill),
		RemovalLine:   v.RemovalLine,
		Certification: v.Certification,
		Signal:        v.Signal,
		Suspension:    v.Suspension,
		History:       v.History,
	}
}
