package request

import (
	"strings"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
)

// CompleteRequest submits a work order. ConfirmSignalFailure is the operator
// answer to an overridable signal failure; leaving it out declines.
type CompleteRequest struct {
	WorkOrderID          string               `json:"work_order_id"`
	WorkerID             string               `json:"worker_id" binding:"required"`
	Fixed                entities.FixedFields `json:"fixed"`
	Memo                 string               `json:"memo"`
	ConfirmSignalFailure *bool                `json:"confirm_signal_failure"`
}

// ToCommand returns false when the body names a different work order.
func (r CompleteRequest) ToCommand(pathID string) (usecase.SubmitCommand, bool) {
	pathID = strings.TrimSpace(pathID)
	if id := strings.TrimSpace(r.WorkOrderID); id != "" && id != pathID {
		return usecase.SubmitCommand{}, false
	}

	fixed := r.Fixed
	if strings.TrimSpace(fixed.Memo) == "" {
		fixed.Memo = r.Memo
	}
	confirm := r.ConfirmSignalFailure != nil && *r.ConfirmSignalFailure
	return usecase.SubmitCommand{
		WorkOrderID: pathID,
		WorkerID:    strings.TrimSpace(r.WorkerID),
		Fixed:       fixed,
		Confirmer:   usecase.ConfirmAnswer(confirm),
	}, true
}

type ValidateRequest struct {
	Fixed entities.FixedFields `json:"fixed"`
}
