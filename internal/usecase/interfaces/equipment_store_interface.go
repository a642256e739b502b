package interfaces

import "fieldops_completion/internal/domain/entities"

// IEquipmentStore is the per-work-order disposition store. Reads return
// isolated copies; writes under one key never touch another.
type IEquipmentStore interface {
	Get(workOrderID string) (entities.EquipmentAggregate, bool)
	SetApiData(workOrderID string, lists entities.EquipmentLists) entities.EquipmentAggregate
	AddInstalled(workOrderID, contractID string, items []entities.EquipmentItem) entities.EquipmentAggregate
	RemoveInstalled(workOrderID, contractID string) entities.EquipmentAggregate
	MarkForRemoval(workOrderID, itemID string) (entities.EquipmentAggregate, bool)
	Unmark(workOrderID, itemID string) (entities.EquipmentAggregate, bool)
	ToggleLossFlag(workOrderID, itemID string, field entities.LossField) (entities.EquipmentAggregate, bool)
	SetReuseAll(workOrderID string, reuse bool) entities.EquipmentAggregate
	Delete(workOrderID string)
}
