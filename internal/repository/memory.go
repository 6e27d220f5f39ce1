// Package repository provides the in-memory run registry used when no
// coordinator is configured. It is a process-lifetime fallback store, not a
// persistence layer: no eviction, no size bound, nothing survives restart.
package repository

import (
	"sync"
	"time"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

// MemoryStore maps run identifiers to run records. All check-then-act
// sequences run under a single mutex so concurrent starts and cancels with
// the same identifier cannot race.
type MemoryStore struct {
	mu   sync.Mutex
	runs map[string]domain.Run
}

// NewMemoryStore creates an empty registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]domain.Run),
	}
}

// CreateRun inserts a run if its identifier is absent. Returns
// run_already_exists on collision.
func (s *MemoryStore) CreateRun(run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[run.RunID]; ok {
		return domain.NewRunAlreadyExists(run.RunID)
	}
	s.runs[run.RunID] = run
	return nil
}

// GetRun looks up a run by identifier. Returns run_not_found on a miss.
func (s *MemoryStore) GetRun(runID string) (domain.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		return domain.Run{}, domain.NewRunNotFound(runID)
	}
	return run, nil
}

// CancelRun transitions a running run to canceled. Runs already in a
// terminal state are returned unchanged. The stored record is replaced with
// an updated copy rather than mutated, so callers holding the previous
// record never observe the transition.
func (s *MemoryStore) CancelRun(runID string, endedAt time.Time) (domain.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		return domain.Run{}, domain.NewRunNotFound(runID)
	}
	if run.State.Terminal() {
		return run, nil
	}

	updated := run
	updated.State = domain.RunStateCanceled
	updated.EndedAt = &endedAt
	s.runs[runID] = updated
	return updated, nil
}
