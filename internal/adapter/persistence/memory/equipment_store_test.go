package memory

import (
	"fmt"
	"sync"
	"testing"

	"fieldops_completion/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLists() entities.EquipmentLists {
	return entities.EquipmentLists{
		CustomerEquipment: []entities.EquipmentItem{
			{ID: "EQ-1", SerialNo: "SN1", ItemMidCode: "04"},
			{ID: "EQ-2", SerialNo: "SN2", ItemMidCode: "02"},
		},
		Removed: []entities.EquipmentItem{{ID: "EQ-9", SerialNo: "SN9"}},
	}
}

func TestEquipmentStore_SetApiDataReplacesOnlyProvidedLists(t *testing.T) {
	s := NewEquipmentStore(nil)
	s.SetApiData("WO-1", seedLists())

	agg := s.SetApiData("WO-1", entities.EquipmentLists{TechnicianStock: []entities.EquipmentItem{{ID: "ST-1"}}})
	assert.Len(t, agg.CustomerEquipment, 2)
	assert.Len(t, agg.TechnicianStock, 1)
	require.Len(t, agg.Removed, 1)
	assert.Equal(t, entities.DispositionRemovedConfirmed, agg.Removed[0].Disposition)

	agg = s.SetApiData("WO-1", entities.EquipmentLists{CustomerEquipment: []entities.EquipmentItem{}})
	assert.Empty(t, agg.CustomerEquipment)
}

func TestEquipmentStore_KeyIsolation(t *testing.T) {
	s := NewEquipmentStore(nil)
	s.SetApiData("A", seedLists())

	_, found := s.Get("B")
	assert.False(t, found)

	s.SetApiData("B", entities.EquipmentLists{})
	s.MarkForRemoval("A", "EQ-1")
	s.SetReuseAll("A", true)

	b, found := s.Get("B")
	require.True(t, found)
	assert.Empty(t, b.CustomerEquipment)
	assert.Empty(t, b.RemovedItems())
	assert.False(t, b.ReuseAll)
}

func TestEquipmentStore_ReadsAreCopies(t *testing.T) {
	s := NewEquipmentStore(nil)
	s.SetApiData("WO-1", seedLists())

	agg, _ := s.Get("WO-1")
	agg.CustomerEquipment[0].SerialNo = "mutated"

	again, _ := s.Get("WO-1")
	assert.Equal(t, "SN1", again.CustomerEquipment[0].SerialNo)
}

func TestEquipmentStore_RemovalFlow(t *testing.T) {
	s := NewEquipmentStore(nil)
	s.SetApiData("WO-1", seedLists())

	agg, ok := s.MarkForRemoval("WO-1", "EQ-1")
	require.True(t, ok)
	removed := agg.RemovedItems()
	require.Len(t, removed, 2)
	assert.Equal(t, "EQ-9", removed[0].ID)
	assert.Equal(t, entities.DispositionMarkedForRemoval, removed[1].Disposition)

	_, ok = s.MarkForRemoval("WO-1", "missing")
	assert.False(t, ok)

	agg, ok = s.ToggleLossFlag("WO-1", "EQ-1", entities.LossFieldCradleLost)
	require.True(t, ok)
	assert.True(t, agg.RemovedItems()[1].Loss.CradleLost)

	// flags only apply to equipment leaving the premises
	_, ok = s.ToggleLossFlag("WO-1", "EQ-2", entities.LossFieldLost)
	assert.False(t, ok)

	agg = s.SetReuseAll("WO-1", true)
	for _, it := range agg.RemovedItems() {
		assert.True(t, it.Reuse, it.ID)
	}

	agg, ok = s.Unmark("WO-1", "EQ-1")
	require.True(t, ok)
	assert.Len(t, agg.RemovedItems(), 1)
	assert.False(t, agg.CustomerEquipment[0].Loss.CradleLost)
}

func TestEquipmentStore_InstalledKeyedByContract(t *testing.T) {
	s := NewEquipmentStore(nil)
	s.AddInstalled("WO-1", "C-2", []entities.EquipmentItem{{ID: "N-2"}})
	s.AddInstalled("WO-1", "C-1", []entities.EquipmentItem{{ID: "N-1"}})
	agg := s.AddInstalled("WO-1", "C-2", []entities.EquipmentItem{{ID: "N-3"}, {ID: "N-4"}})

	installed := agg.InstalledItems()
	require.Len(t, installed, 3)
	assert.Equal(t, "N-1", installed[0].ID)
	assert.Equal(t, entities.DispositionInstalled, installed[1].Disposition)

	agg = s.RemoveInstalled("WO-1", "C-2")
	assert.Len(t, agg.InstalledItems(), 1)
}

func TestEquipmentStore_ConcurrentKeys(t *testing.T) {
	s := NewEquipmentStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("WO-%d", i)
			s.SetApiData(key, entities.EquipmentLists{CustomerEquipment: []entities.EquipmentItem{{ID: key}}})
			s.MarkForRemoval(key, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("WO-%d", i)
		agg, ok := s.Get(key)
		require.True(t, ok)
		require.Len(t, agg.RemovedItems(), 1)
		assert.Equal(t, key, agg.RemovedItems()[0].ID)
	}
}

func TestEquipmentStore_Delete(t *testing.T) {
	s := NewEquipmentStore(nil)
	s.SetApiData("WO-1", seedLists())
	s.Delete("WO-1")
	_, ok := s.Get("WO-1")
	assert.False(t, ok)
}
