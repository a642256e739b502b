package usecase

import (
	"errors"
	"strings"
	"sync"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/domain/workflow"

	"github.com/patrickmn/go-cache"
)

var (
	ErrInvalidWorkOrderID   = errors.New("invalid work_order_id")
	ErrSessionNotFound      = errors.New("work order session not found")
	ErrWorkOrderCompleted   = errors.New("work order already completed")
	ErrSubmissionInProgress = errors.New("completion already in progress")
)

// WorkSession holds the transient completion state of one open work order.
// Fields are guarded by mu; submit serializes pipeline runs.
type WorkSession struct {
	mu     sync.Mutex
	submit sync.Mutex

	Order                 entities.WorkOrder
	Hotbill               *workflow.HotbillMachine
	RemovalLine           *workflow.RemovalLineMachine
	RemovalLineRegistered bool
	Certification         entities.CertificationState
	Signal                entities.SignalAttempt
	Suspension            *entities.SuspensionEdit
	OpenedAt              time.Time

	done bool
}

// SessionRegistry maps work-order ids to sessions. Completed ids are kept
// as tombstones for a while so late calls are refused.
type SessionRegistry struct {
	mu        sync.RWMutex
	sessions  map[string]*WorkSession
	completed *cache.Cache
}

func NewSessionRegistry(tombstoneTTL time.Duration) *SessionRegistry {
	if tombstoneTTL <= 0 {
		tombstoneTTL = 24 * time.Hour
	}
	return &SessionRegistry{
		sessions:  map[string]*WorkSession{},
		completed: cache.New(tombstoneTTL, tombstoneTTL/4),
	}
}

// Open returns the existing session for id or stores the one built by
// build. created reports which happened.
func (r *SessionRegistry) Open(id string, build func() *WorkSession) (s *WorkSession, created bool, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false, ErrInvalidWorkOrderID
	}
	if r.IsCompleted(id) {
		return nil, false, ErrWorkOrderCompleted
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s, false, nil
	}
	s = build()
	r.sessions[id] = s
	return s, true, nil
}

func (r *SessionRegistry) Get(id string) (*WorkSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidWorkOrderID
	}
	if r.IsCompleted(id) {
		return nil, ErrWorkOrderCompleted
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Complete discards the session and records the tombstone.
func (r *SessionRegistry) Complete(id string) {
	r.completed.SetDefault(id, time.Now().UTC())
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *SessionRegistry) IsCompleted(id string) bool {
	_, found := r.completed.Get(id)
	return found
}

// with runs fn while holding the session lock.
func (r *SessionRegistry) with(id string, fn func(s *WorkSession) error) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return ErrWorkOrderCompleted
	}
	return fn(s)
}
