package memory

import (
	"sync"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"

	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"
)

// EquipmentStore keeps one disposition aggregate per work order in memory.
//
// Each key has its own lock. The top-level map lock is held only long enough
// to find or create an entry, so work orders never wait on each other.
type EquipmentStore struct {
	mu      sync.RWMutex
	entries map[string]*equipmentEntry
	now     func() time.Time
	log     *zap.SugaredLogger
}

type equipmentEntry struct {
	mu  sync.Mutex
	agg *entities.EquipmentAggregate
}

var _ interfaces.IEquipmentStore = (*EquipmentStore)(nil)

func NewEquipmentStore(log *zap.SugaredLogger) *EquipmentStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EquipmentStore{
		entries: map[string]*equipmentEntry{},
		now:     time.Now,
		log:     log,
	}
}

func (s *EquipmentStore) Get(workOrderID string) (entities.EquipmentAggregate, bool) {
	e := s.entry(workOrderID, false)
	if e == nil {
		return entities.EquipmentAggregate{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.snapshot(e.agg), true
}

func (s *EquipmentStore) SetApiData(workOrderID string, lists entities.EquipmentLists) entities.EquipmentAggregate {
	agg, _ := s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		a.ApplyLists(lists)
		return true
	})
	return agg
}

func (s *EquipmentStore) AddInstalled(workOrderID, contractID string, items []entities.EquipmentItem) entities.EquipmentAggregate {
	agg, _ := s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		a.SetInstalled(contractID, items)
		return true
	})
	return agg
}

func (s *EquipmentStore) RemoveInstalled(workOrderID, contractID string) entities.EquipmentAggregate {
	agg, _ := s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		a.RemoveInstalled(contractID)
		return true
	})
	return agg
}

func (s *EquipmentStore) MarkForRemoval(workOrderID, itemID string) (entities.EquipmentAggregate, bool) {
	return s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		return a.MarkForRemoval(itemID)
	})
}

func (s *EquipmentStore) Unmark(workOrderID, itemID string) (entities.EquipmentAggregate, bool) {
	return s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		return a.Unmark(itemID)
	})
}

func (s *EquipmentStore) ToggleLossFlag(workOrderID, itemID string, field entities.LossField) (entities.EquipmentAggregate, bool) {
	return s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		return a.ToggleLossFlag(itemID, field)
	})
}

func (s *EquipmentStore) SetReuseAll(workOrderID string, reuse bool) entities.EquipmentAggregate {
	agg, _ := s.mutate(workOrderID, func(a *entities.EquipmentAggregate) bool {
		a.SetReuseAll(reuse)
		return true
	})
	return agg
}

func (s *EquipmentStore) Delete(workOrderID string) {
	s.mu.Lock()
	delete(s.entries, workOrderID)
	s.mu.Unlock()
}

func (s *EquipmentStore) mutate(workOrderID string, fn func(a *entities.EquipmentAggregate) bool) (entities.EquipmentAggregate, bool) {
	e := s.entry(workOrderID, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	ok := fn(e.agg)
	if ok {
		e.agg.UpdatedAt = s.now().UTC()
	}
	return s.snapshot(e.agg), ok
}

func (s *EquipmentStore) entry(workOrderID string, create bool) *equipmentEntry {
	s.mu.RLock()
	e, ok := s.entries[workOrderID]
	s.mu.RUnlock()
	if ok || !create {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[workOrderID]; ok {
		return e
	}
	e = &equipmentEntry{agg: entities.NewEquipmentAggregate(workOrderID)}
	s.entries[workOrderID] = e
	return e
}

func (s *EquipmentStore) snapshot(a *entities.EquipmentAggregate) entities.EquipmentAggregate {
	var out entities.EquipmentAggregate
	if err := deepcopy.Copy(&out, a); err != nil {
		s.log.Errorw("[equipment][store] snapshot copy failed", "work_order_id", a.WorkOrderID, "error", err)
		return entities.EquipmentAggregate{WorkOrderID: a.WorkOrderID}
	}
	return out
}
