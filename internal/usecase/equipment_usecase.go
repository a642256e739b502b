package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var (
	ErrEquipmentItemNotFound = errors.New("equipment item not found")
	ErrInvalidLossField      = errors.New("invalid loss field")
	ErrInvalidContractID     = errors.New("invalid contract_id")
)

// IEquipmentUseCase edits the disposition of one work order's equipment.
type IEquipmentUseCase interface {
	Get(ctx context.Context, workOrderID string) (entities.EquipmentAggregate, error)
	SetApiData(ctx context.Context, workOrderID string, lists entities.EquipmentLists) (entities.EquipmentAggregate, error)
	AddInstalled(ctx context.Context, workOrderID, contractID string, items []entities.EquipmentItem) (entities.EquipmentAggregate, error)
	RemoveInstalled(ctx context.Context, workOrderID, contractID string) (entities.EquipmentAggregate, error)
	MarkForRemoval(ctx context.Context, workOrderID, itemID string) (entities.EquipmentAggregate, error)
	Unmark(ctx context.Context, workOrderID, itemID string) (entities.EquipmentAggregate, error)
	ToggleLossFlag(ctx context.Context, workOrderID, itemID string, field entities.LossField) (entities.EquipmentAggregate, error)
	SetReuseAll(ctx context.Context, workOrderID string, reuse bool) (entities.EquipmentAggregate, error)
}

type EquipmentUseCase struct {
	store    interfaces.IEquipmentStore
	sessions *SessionRegistry
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(store interfaces.IEquipmentStore, sessions *SessionRegistry) *EquipmentUseCase {
	return &EquipmentUseCase{store: store, sessions: sessions}
}

func (u *EquipmentUseCase) Get(_ context.Context, workOrderID string) (entities.EquipmentAggregate, error) {
	return u.edit(workOrderID, func(id string) (entities.EquipmentAggregate, error) {
		agg, ok := u.store.Get(id)
		if !ok {
			return entities.EquipmentAggregate{}, ErrSessionNotFound
		}
		return agg, nil
	})
}

func (u *EquipmentUseCase) SetApiData(_ context.Context, workOrderID string, lists entities.EquipmentLists) (entities.EquipmentAggregate, error) {
	return u.edit(workOrderID, func(id string) (entities.EquipmentAggregate, error) {
		return u.store.SetApiData(id, lists), nil
	})
}

func (u *EquipmentUseCase) AddInstalled(_ context.Context, workOrderID, contractID string, items []entities.EquipmentItem) (entities.EquipmentAggregate, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.EquipmentAggregate{}, ErrInvalidContractID
	}
	return u.edit(workOrderID, func(id string) (entities.EquipmentAggregate, error) {
		return u.store.AddInstalled(id, contractID, items), nil
	})
}

func (u *EquipmentUseCase) RemoveInstalled(_ context.Context, workOrderID, contractID string) (entities.EquipmentAggregate, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.EquipmentAggregate{}, ErrInvalidContractID
	}
	return u.edit(workOrderID, func(id string) (entities.EquipmentAggregate, error) {
		return u.store.RemoveInstalled(id, contractID), nil
	})
}

func (u *EquipmentUseCase) MarkForRemoval(_ context.Context, workOrderID, itemID string) (entities.EquipmentAggregate, error) {
	return u.itemOp(workOrderID, itemID, u.store.MarkForRemoval)
}

func (u *EquipmentUseCase) Unmark(_ context.Context, workOrderID, itemID string) (entities.EquipmentAggregate, error) {
	return u.itemOp(workOrderID, itemID, u.store.Unmark)
}

func (u *EquipmentUseCase) ToggleLossFlag(_ context.Context, workOrderID, itemID string, field entities.LossField) (entities.EquipmentAggregate, error) {
	if !field.Valid() {
		return entities.EquipmentAggregate{}, ErrInvalidLossField
	}
	return u.itemOp(workOrderID, itemID, func(wo, item string) (entities.EquipmentAggregate, bool) {
		return u.store.ToggleLossFlag(wo, item, field)
	})
}

func (u *EquipmentUseCase) SetReuseAll(_ context.Context, workOrderID string, reuse bool) (entities.EquipmentAggregate, error) {
	return u.edit(workOrderID, func(id string) (entities.EquipmentAggregate, error) {
		return u.store.SetReuseAll(id, reuse), nil
	})
}

func (u *EquipmentUseCase) itemOp(workOrderID, itemID string, op func(wo, item string) (entities.EquipmentAggregate, bool)) (entities.EquipmentAggregate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.EquipmentAggregate{}, ErrEquipmentItemNotFound
	}
	return u.edit(workOrderID, func(id string) (entities.EquipmentAggregate, error) {
		agg, ok := op(id, itemID)
		if !ok {
			return agg, ErrEquipmentItemNotFound
		}
		return agg, nil
	})
}

// edit runs fn under the session lock. The store entry belongs to an open
// session, so unopened and completed work orders are refused.
func (u *EquipmentUseCase) edit(workOrderID string, fn func(id string) (entities.EquipmentAggregate, error)) (entities.EquipmentAggregate, error) {
	var agg entities.EquipmentAggregate
	err := u.sessions.with(workOrderID, func(s *WorkSession) error {
		var err error
		agg, err = fn(s.Order.ID)
		return err
	})
	return agg, err
}
