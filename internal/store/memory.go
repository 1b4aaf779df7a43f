package store

import (
	"errors"
	"sync"

	"github.com/hemant838/goquant-assignment/internal/latency"
)

// ErrNotFound is returned before the first resolution pass completes.
var ErrNotFound = errors.New("no resolved connection set yet")

// MemoryStore holds the most recent resolved connection snapshot.
// The slot is written wholesale by the aggregator and read by the API
// layer; writes are whole-value replacements, never in-place mutation,
// so results from overlapping passes cannot interleave.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot latency.Snapshot
	resolved bool
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace swaps in a complete snapshot from one resolution pass.
func (s *MemoryStore) Replace(snapshot latency.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.resolved = true
}

// Latest returns the most recent snapshot.
func (s *MemoryStore) Latest() (latency.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.resolved {
		return latency.Snapshot{}, ErrNotFound
	}
	return s.snapshot, nil
}
