package request

import "fieldops_completion/internal/domain/entities"

type InstalledRequest struct {
	ContractID string                   `json:"contract_id" binding:"required"`
	Items      []entities.EquipmentItem `json:"items"`
}

type LossFlagRequest struct {
	Field string `json:"field" binding:"required"`
}

func (r LossFlagRequest) ToLossField() entities.LossField {
	return entities.LossField(r.Field)
}

type ReuseRequest struct {
	Reuse *bool `json:"reuse" binding:"required"`
}

type DraftRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}
