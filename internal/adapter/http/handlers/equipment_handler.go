package handlers

import (
	"errors"
	"net/http"

	request "fieldops_completion/internal/adapter/http/dto/request"
	response "fieldops_completion/internal/adapter/http/dto/response"
	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler edits the disposition of a work order's equipment.
type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

func (h *EquipmentHandler) Get(c *gin.Context) {
	agg, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, agg, err)
}

// SetApiData applies a partial bulk update; lists left out of the body are
// untouched.
func (h *EquipmentHandler) SetApiData(c *gin.Context) {
	var payload entities.EquipmentLists
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	agg, err := h.usecase.SetApiData(c.Request.Context(), c.Param("id"), payload)
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) AddInstalled(c *gin.Context) {
	var payload request.InstalledRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	agg, err := h.usecase.AddInstalled(c.Request.Context(), c.Param("id"), payload.ContractID, payload.Items)
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) RemoveInstalled(c *gin.Context) {
	agg, err := h.usecase.RemoveInstalled(c.Request.Context(), c.Param("id"), c.Param("contract_id"))
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) MarkForRemoval(c *gin.Context) {
	agg, err := h.usecase.MarkForRemoval(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) Unmark(c *gin.Context) {
	agg, err := h.usecase.Unmark(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) ToggleLossFlag(c *gin.Context) {
	var payload request.LossFlagRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	agg, err := h.usecase.ToggleLossFlag(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToLossField())
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) SetReuseAll(c *gin.Context) {
	var payload request.ReuseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	agg, err := h.usecase.SetReuseAll(c.Request.Context(), c.Param("id"), *payload.Reuse)
	h.respond(c, agg, err)
}

func (h *EquipmentHandler) respond(c *gin.Context, agg entities.EquipmentAggregate, err error) {
	if err != nil {
		abortWith(c, mapEquipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEquipmentAggregate(agg))
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLossField), errors.Is(err, usecase.ErrInvalidContractID):
		return badRequest(err)
	case errors.Is(err, usecase.ErrEquipmentItemNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_ITEM_NOT_FOUND", "Equipment item not found", http.StatusNotFound)
	default:
		return mapSessionError(err)
	}
}
