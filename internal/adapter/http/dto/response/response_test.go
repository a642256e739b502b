package response

import (
	"testing"

	"fieldops_completion/internal/domain/entities"
)

func TestFromHotbillSnapshot(t *testing.T) {
	r := FromHotbillSnapshot(entities.HotbillSnapshot{
		Status:      entities.HotbillNormalPending,
		ChargeLines: []entities.ChargeLine{{Name: "fee", ItemCode: "F1", Amount: 1500, SortKey: 2}},
		Total:       1500,
	})
	if r.Status != string(entities.HotbillNormalPending) || len(r.ChargeLines) != 1 || r.ChargeLines[0].Amount != 1500 {
		t.Fatalf("unexpected response %+v", r)
	}
}

func TestFromCompletionOutcome_EmptyListsAreArrays(t *testing.T) {
	r := FromCompletionOutcome(entities.CompletionOutcome{WorkOrderID: "WO-1"})
	if r.Warnings == nil || r.PartialFailures == nil || r.PostCommitErrors == nil || r.Steps == nil {
		t.Fatalf("expected non-nil slices, got %+v", r)
	}
}

func TestFromEquipmentAggregate(t *testing.T) {
	agg := entities.NewEquipmentAggregate("WO-1")
	agg.Removed = []entities.EquipmentItem{{ID: "M-1"}}
	r := FromEquipmentAggregate(*agg)
	if r.RemovedCount != 1 || r.ContractEquipment == nil {
		t.Fatalf("unexpected response %+v", r)
	}
}
