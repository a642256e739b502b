package handlers

import (
	"errors"
	"net/http"

	request "fieldops_completion/internal/adapter/http/dto/request"
	response "fieldops_completion/internal/adapter/http/dto/response"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler opens work-order sessions and serves their state.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// Open creates the session (or returns the existing one) and runs the
// read-only prefetches.
func (h *WorkOrderHandler) Open(c *gin.Context) {
	var payload request.OpenWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	wo, ok := payload.ResolveWorkOrder(c.Param("id"))
	if !ok {
		abortWith(c, errWorkOrderMismatch)
		return
	}

	view, err := h.usecase.Open(c.Request.Context(), wo, payload.Equipment)
	if err != nil {
		abortWith(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderView(view))
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderView(view))
}

func (h *WorkOrderHandler) StageSuspension(c *gin.Context) {
	var payload request.SuspensionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	edit, err := h.usecase.StageSuspension(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, edit)
}

// LookupEquipmentHistory answers 200 with found=false when the legacy side
// has no record.
func (h *WorkOrderHandler) LookupEquipmentHistory(c *gin.Context) {
	rec, err := h.usecase.LookupEquipmentHistory(c.Request.Context(), c.Query("serial"), c.Query("mac"))
	if err != nil {
		abortWith(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEquipmentRecord(rec))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSuspensionPeriod), errors.Is(err, usecase.ErrEquipmentLookupEmpty):
		return badRequest(err)
	case errors.Is(err, usecase.ErrWorkOrderMismatch):
		return errWorkOrderMismatch
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrWorkOrderCompleted):
		return mapSessionError(err)
	default:
		return pkg.NewDomainError("LEGACY_UNAVAILABLE", "Legacy backend call failed", err, http.StatusBadGateway)
	}
}
