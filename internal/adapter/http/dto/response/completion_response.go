package response

import (
	"time"

	"fieldops_completion/internal/domain/entities"
)

type CompletionResponse struct {
	WorkOrderID      string    `json:"work_order_id"`
	AttemptID        string    `json:"attempt_id"`
	Message          string    `json:"message"`
	Warnings         []string  `json:"warnings"`
	PartialFailures  []string  `json:"partial_failures"`
	ASTicketID       string    `json:"as_ticket_id,omitempty"`
	PostCommitErrors []string  `json:"post_commit_errors"`
	Steps            []string  `json:"steps"`
	CompletedAt      time.Time `json:"completed_at"`
}

func FromCompletionOutcome(o entities.CompletionOutcome) CompletionResponse {
	return CompletionResponse{
		WorkOrderID:      o.WorkOrderID,
		AttemptID:        o.AttemptID,
		Message:          o.Message,
		Warnings:         strs(o.Warnings),
		PartialFailures:  strs(o.PartialFailures),
		ASTicketID:       o.ASTicketID,
		PostCommitErrors: strs(o.PostCommitErrors),
		Steps:            strs(o.Steps),
		CompletedAt:      o.CompletedAt,
	}
}

type ValidationResponse struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
}

func FromWarnings(warnings []string) ValidationResponse {
	return ValidationResponse{Valid: true, Warnings: strs(warnings)}
}

type DraftResponse struct {
	WorkOrderID string         `json:"work_order_id"`
	Fields      map[string]any `json:"fields"`
	SavedAt     time.Time      `json:"saved_at"`
}

func FromDraft(d entities.Draft) DraftResponse {
	fields := d.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return DraftResponse{WorkOrderID: d.WorkOrderID, Fields: fields, SavedAt: d.SavedAt}
}

func strs(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
