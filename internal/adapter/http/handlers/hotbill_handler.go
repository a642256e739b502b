package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fieldops_completion/internal/adapter/http/dto/request"
	response "fieldops_completion/internal/adapter/http/dto/response"
	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
)

// HotbillHandler exposes the early-termination billing flow.
type HotbillHandler struct {
	usecase usecase.IHotbillUseCase
}

func NewHotbillHandler(uc usecase.IHotbillUseCase) *HotbillHandler {
	return &HotbillHandler{usecase: uc}
}

// Get loads the hotbill on first access.
func (h *HotbillHandler) Get(c *gin.Context) {
	h.run(c, h.usecase.Load)
}

func (h *HotbillHandler) Confirm(c *gin.Context) {
	h.run(c, h.usecase.Confirm)
}

func (h *HotbillHandler) Recalculate(c *gin.Context) {
	h.run(c, h.usecase.Recalculate)
}

func (h *HotbillHandler) Skip(c *gin.Context) {
	h.run(c, h.usecase.Skip)
}

func (h *HotbillHandler) SetIntent(c *gin.Context) {
	var payload request.RecalcIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	snap, err := h.usecase.SetRecalcIntent(c.Request.Context(), c.Param("id"), *payload.Intent)
	if err != nil {
		abortWith(c, mapHotbillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHotbillSnapshot(snap))
}

func (h *HotbillHandler) run(c *gin.Context, op func(ctx context.Context, workOrderID string) (entities.HotbillSnapshot, error)) {
	snap, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapHotbillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHotbillSnapshot(snap))
}

func mapHotbillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrHotbillMissingIdentifiers):
		return pkg.NewDomainErrorSimple("HOTBILL_MISSING_IDENTIFIERS", "Customer, contract and service office are required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrHotbillSimulationFailed):
		return pkg.NewDomainError("HOTBILL_SIMULATION_FAILED", "Billing simulation failed", err, http.StatusBadGateway).WithDetails(err.Error())
	default:
		return mapSessionError(err)
	}
}
