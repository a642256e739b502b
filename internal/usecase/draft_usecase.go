package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var (
	ErrDraftNotFound      = errors.New("draft not found")
	ErrInvalidDraftFields = errors.New("invalid draft fields")
)

// IDraftUseCase autosaves and restores in-progress form fields.
type IDraftUseCase interface {
	Save(ctx context.Context, workOrderID string, fields map[string]any) (entities.Draft, error)
	Restore(ctx context.Context, workOrderID string) (entities.Draft, error)
	Clear(ctx context.Context, workOrderID string) error
}

type DraftUseCase struct {
	repo     interfaces.IDraftRepository
	sessions *SessionRegistry
	clock    Clock
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository, sessions *SessionRegistry, clock Clock) *DraftUseCase {
	return &DraftUseCase{repo: repo, sessions: sessions, clock: clock}
}

// Save refuses late autosaves once the work order is completed.
func (u *DraftUseCase) Save(ctx context.Context, workOrderID string, fields map[string]any) (entities.Draft, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Draft{}, ErrInvalidWorkOrderID
	}
	if fields == nil {
		return entities.Draft{}, ErrInvalidDraftFields
	}
	if u.completed(workOrderID) {
		return entities.Draft{}, ErrWorkOrderCompleted
	}

	d := entities.Draft{WorkOrderID: workOrderID, Fields: fields, SavedAt: u.clock.Now().UTC()}
	if err := u.repo.Save(ctx, d); err != nil {
		return entities.Draft{}, err
	}
	return d, nil
}

func (u *DraftUseCase) Restore(ctx context.Context, workOrderID string) (entities.Draft, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Draft{}, ErrInvalidWorkOrderID
	}
	if u.completed(workOrderID) {
		return entities.Draft{}, ErrDraftNotFound
	}

	d, err := u.repo.Restore(ctx, workOrderID)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.WorkOrderID == "" {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *DraftUseCase) Clear(ctx context.Context, workOrderID string) error {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return ErrInvalidWorkOrderID
	}
	return u.repo.Clear(ctx, workOrderID)
}

func (u *DraftUseCase) completed(workOrderID string) bool {
	return u.sessions != nil && u.sessions.IsCompleted(workOrderID)
}
