package handlers

import (
	"errors"
	"net/http"

	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
)

const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeInvalidState   = "INVALID_STATE"
)

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple(codeInvalidRequest, "Invalid request payload", http.StatusBadRequest)
	errWorkOrderMismatch = pkg.NewDomainErrorSimple("WORK_ORDER_MISMATCH", "Body work_order_id does not match path", http.StatusBadRequest)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapSessionError covers the errors shared by every work-order endpoint.
func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple(codeInvalidRequest, "Invalid work_order_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_OPEN", "Work order session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderCompleted):
		return pkg.NewDomainErrorSimple("WORK_ORDER_COMPLETED", "Work order already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("COMPLETION_IN_PROGRESS", "Completion already in progress", http.StatusConflict)
	case errors.Is(err, workflow.ErrTransitionNotAllowed),
		errors.Is(err, workflow.ErrRecalcIntentRequired),
		errors.Is(err, workflow.ErrRecalcIntentNotApplicable),
		errors.Is(err, workflow.ErrRemovalLineLocked),
		errors.Is(err, workflow.ErrWiringTypeRequired),
		errors.Is(err, workflow.ErrReasonNotApplicable):
		return pkg.NewDomainError(codeInvalidState, "Operation not allowed in current state", err, http.StatusConflict).WithDetails(err.Error())
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func badRequest(err error) *pkg.AppError {
	return pkg.NewDomainError(codeInvalidRequest, "Invalid request", err, http.StatusBadRequest).WithDetails(err.Error())
}
