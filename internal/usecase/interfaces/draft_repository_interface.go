package interfaces

import (
	"context"

	"fieldops_completion/internal/domain/entities"
)

// IDraftRepository persists autosaved form state by work-order id.
// Restore returns a zero Draft (empty WorkOrderID) when nothing is stored.
type IDraftRepository interface {
	Save(ctx context.Context, d entities.Draft) error
	Restore(ctx context.Context, workOrderID string) (entities.Draft, error)
	Clear(ctx context.Context, workOrderID string) error
}
