package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "fieldops_completion/internal/adapter/http/dto/request"
	response "fieldops_completion/internal/adapter/http/dto/response"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompletionHandler runs the completion pipeline.
type CompletionHandler struct {
	usecase usecase.ICompletionUseCase
	log     *zap.SugaredLogger
}

func NewCompletionHandler(uc usecase.ICompletionUseCase, log *zap.SugaredLogger) *CompletionHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CompletionHandler{usecase: uc, log: log}
}

// Complete submits the work order. An overridable signal failure answers
// 409 SIGNAL_CONFIRMATION_REQUIRED; the client resubmits with
// confirm_signal_failure set.
func (h *CompletionHandler) Complete(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	cmd, ok := payload.ToCommand(c.Param("id"))
	if !ok {
		abortWith(c, errWorkOrderMismatch)
		return
	}

	h.log.Infow("[completion][handler] complete start", "work_order_id", cmd.WorkOrderID, "worker_id", cmd.WorkerID)
	outcome, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		h.log.Warnw("[completion][handler] complete failed", "work_order_id", cmd.WorkOrderID, "error", err)
		abortWith(c, mapCompletionError(err))
		return
	}
	h.log.Infow("[completion][handler] complete success", "work_order_id", outcome.WorkOrderID, "attempt_id", outcome.AttemptID, "post_commit_errors", len(outcome.PostCommitErrors))

	c.JSON(http.StatusOK, response.FromCompletionOutcome(outcome))
}

// Validate runs the gate only, without any remote call.
func (h *CompletionHandler) Validate(c *gin.Context) {
	var payload request.ValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	warnings, err := h.usecase.Validate(c.Request.Context(), c.Param("id"), payload.Fixed)
	if err != nil {
		abortWith(c, mapCompletionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWarnings(warnings))
}

func mapCompletionError(err error) *pkg.AppError {
	var (
		ve  *usecase.ValidationError
		be  *usecase.BlockingError
		se  *usecase.SignalConfirmationError
		sub *usecase.SubmissionError
	)
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_FAILED", "Completion validation failed", err, http.StatusUnprocessableEntity).WithDetails(ve.Messages...)
	case errors.As(err, &be):
		return pkg.NewDomainError("BLOCKING_FAILURE", "Completion aborted by a blocking failure", err, http.StatusConflict).
			WithDetails(fmt.Sprintf("%s: %s", be.Step, be.Reason))
	case errors.As(err, &se):
		return pkg.NewDomainError("SIGNAL_CONFIRMATION_REQUIRED", "Signal failed; operator confirmation required", err, http.StatusConflict).WithDetails(se.Message)
	case errors.As(err, &sub):
		return pkg.NewDomainError("SUBMISSION_REJECTED", "Completion was rejected by the backend", err, http.StatusBadGateway).WithDetails(sub.Message)
	default:
		return mapSessionError(err)
	}
}
