package response

import "fieldops_completion/internal/domain/entities"

type ChargeLineResponse struct {
	Name     string `json:"name"`
	ItemCode string `json:"item_code"`
	Amount   int64  `json:"amount"`
}

type HotbillResponse struct {
	Status             string               `json:"status"`
	Applicable         bool                 `json:"applicable"`
	HasHistory         bool                 `json:"has_history"`
	TargetDate         string               `json:"target_date"`
	NeedsRecalculation bool                 `json:"needs_recalculation"`
	FutureDated        bool                 `json:"future_dated"`
	RecalcIntent       bool                 `json:"recalc_intent"`
	ChargeLines        []ChargeLineResponse `json:"charge_lines"`
	Total              int64                `json:"total"`
	LastError          string               `json:"last_error,omitempty"`
	Confirmed          bool                 `json:"confirmed"`
	Ready              bool                 `json:"ready"`
}

func FromHotbillSnapshot(s entities.HotbillSnapshot) HotbillResponse {
	lines := make([]ChargeLineResponse, 0, len(s.ChargeLines))
	for _, l := range s.ChargeLines {
		lines = append(lines, ChargeLineResponse{Name: l.Name, ItemCode: l.ItemCode, Amount: l.Amount})
	}
	return HotbillResponse{
		Status:             string(s.Status),
		Applicable:         s.Applicable,
		HasHistory:         s.HasHistory,
		TargetDate:         s.TargetDate,
		NeedsRecalculation: s.NeedsRecalculation,
		FutureDated:        s.FutureDated,
		RecalcIntent:       s.RecalcIntent,
		ChargeLines:        lines,
		Total:              s.Total,
		LastError:          s.LastError,
		Confirmed:          s.Confirmed,
		Ready:              s.Ready,
	}
}
