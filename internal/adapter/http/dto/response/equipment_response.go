package response

import (
	"time"

	"fieldops_completion/internal/domain/entities"
)

type EquipmentResponse struct {
	WorkOrderID       string                              `json:"work_order_id"`
	ContractEquipment []entities.EquipmentItem            `json:"contract_equipment"`
	TechnicianStock   []entities.EquipmentItem            `json:"technician_stock"`
	CustomerEquipment []entities.EquipmentItem            `json:"customer_equipment"`
	RemovalCandidates []entities.EquipmentItem            `json:"removal_candidates"`
	Removed           []entities.EquipmentItem            `json:"removed"`
	Installed         map[string][]entities.EquipmentItem `json:"installed"`
	ReuseAll          bool                                `json:"reuse_all"`
	RemovedCount      int                                 `json:"removed_count"`
	UpdatedAt         time.Time                           `json:"updated_at"`
}

func FromEquipmentAggregate(a entities.EquipmentAggregate) EquipmentResponse {
	return EquipmentResponse{
		WorkOrderID:       a.WorkOrderID,
		ContractEquipment: nonNil(a.ContractEquipment),
		TechnicianStock:   nonNil(a.TechnicianStock),
		CustomerEquipment: nonNil(a.CustomerEquipment),
		RemovalCandidates: nonNil(a.RemovalCandidates),
		Removed:           nonNil(a.Removed),
		Installed:         a.Installed,
		ReuseAll:          a.ReuseAll,
		RemovedCount:      len(a.Removed),
		UpdatedAt:         a.UpdatedAt,
	}
}

type EquipmentHistoryResponse struct {
	Found  bool                      `json:"found"`
	Record *entities.EquipmentRecord `json:"record,omitempty"`
}

func FromEquipmentRecord(rec *entities.EquipmentRecord) EquipmentHistoryResponse {
	return EquipmentHistoryResponse{Found: rec != nil, Record: rec}
}

func nonNil(items []entities.EquipmentItem) []entities.EquipmentItem {
	if items == nil {
		return []entities.EquipmentItem{}
	}
	return items
}
