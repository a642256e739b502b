package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fieldops_completion/internal/adapter/http/dto/request"
	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
)

// RemovalLineHandler walks the removal-line decision tree and the AS
// ticket capture.
type RemovalLineHandler struct {
	usecase usecase.IRemovalLineUseCase
}

func NewRemovalLineHandler(uc usecase.IRemovalLineUseCase) *RemovalLineHandler {
	return &RemovalLineHandler{usecase: uc}
}

func (h *RemovalLineHandler) Get(c *gin.Context) {
	h.run(c, h.usecase.Get)
}

func (h *RemovalLineHandler) Update(c *gin.Context) {
	var payload request.RemovalLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	snap, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	h.respond(c, snap, err)
}

func (h *RemovalLineHandler) Complete(c *gin.Context) {
	h.run(c, h.usecase.Complete)
}

func (h *RemovalLineHandler) AssignAS(c *gin.Context) {
	h.run(c, h.usecase.AssignAS)
}

func (h *RemovalLineHandler) SaveASTicket(c *gin.Context) {
	var payload request.ASTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	snap, err := h.usecase.SaveASTicket(c.Request.Context(), c.Param("id"), payload.ToInput())
	h.respond(c, snap, err)
}

func (h *RemovalLineHandler) CancelAS(c *gin.Context) {
	h.run(c, h.usecase.CancelAS)
}

func (h *RemovalLineHandler) Edit(c *gin.Context) {
	h.run(c, h.usecase.Edit)
}

func (h *RemovalLineHandler) run(c *gin.Context, op func(ctx context.Context, workOrderID string) (entities.RemovalLineSnapshot, error)) {
	snap, err := op(c.Request.Context(), c.Param("id"))
	h.respond(c, snap, err)
}

func (h *RemovalLineHandler) respond(c *gin.Context, snap entities.RemovalLineSnapshot, err error) {
	if err != nil {
		abortWith(c, mapRemovalLineError(err))
		return
	}
	c.JSON(http.StatusOK, snap)
}

func mapRemovalLineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRemovalLineNotApplicable):
		return pkg.NewDomainErrorSimple("REMOVAL_LINE_NOT_APPLICABLE", "Removal line management does not apply to this work order", http.StatusConflict)
	case errors.Is(err, workflow.ErrInvalidWiringType),
		errors.Is(err, workflow.ErrInvalidOutcome),
		errors.Is(err, workflow.ErrInvalidReason),
		errors.Is(err, workflow.ErrASHopeInPast),
		errors.Is(err, workflow.ErrASHopeOutOfSlot):
		return badRequest(err)
	default:
		return mapSessionError(err)
	}
}
