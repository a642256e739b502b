package request

import (
	"strings"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
)

type RemovalLineRequest struct {
	WiringType string `json:"wiring_type"`
	Outcome    string `json:"outcome"`
	Reason     string `json:"reason"`
}

func (r RemovalLineRequest) ToUpdate() usecase.RemovalLineUpdate {
	return usecase.RemovalLineUpdate{
		WiringType: entities.WiringType(strings.TrimSpace(r.WiringType)),
		Outcome:    entities.RemovalOutcome(strings.TrimSpace(r.Outcome)),
		Reason:     entities.IncompleteReason(strings.TrimSpace(r.Reason)),
	}
}

// ASTicketRequest is the AS capture form. A nil hope_at takes the default
// slot.
type ASTicketRequest struct {
	HopeAt       *time.Time `json:"hope_at"`
	ContactPhone string     `json:"contact_phone"`
	Memo         string     `json:"memo"`
	Emergency    bool       `json:"emergency"`
	Holiday      bool       `json:"holiday"`
}

func (r ASTicketRequest) ToInput() usecase.ASTicketInput {
	return usecase.ASTicketInput{
		HopeAt:       r.HopeAt,
		ContactPhone: r.ContactPhone,
		Memo:         r.Memo,
		Emergency:    r.Emergency,
		Holiday:      r.Holiday,
	}
}
