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

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) Save(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	d, err := h.usecase.Save(c.Request.Context(), c.Param("id"), payload.Fields)
	if err != nil {
		abortWith(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) Restore(c *gin.Context) {
	d, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) Clear(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidDraftFields):
		return badRequest(err)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderCompleted):
		return mapSessionError(err)
	default:
		return pkg.NewDomainError("DRAFT_STORE_ERROR", "Draft storage failed", err, http.StatusInternalServerError)
	}
}
