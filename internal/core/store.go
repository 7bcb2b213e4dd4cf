package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Bundle is the immutable grouping of a table with everything derived
// from it. Created once at upload time, read-only thereafter, and kept
// for the lifetime of the process.
type Bundle struct {
	Table     *Table
	Types     TypeMap
	Summary   Summary
	Charts    Charts
	Preview   Preview
	CreatedAt time.Time
}

// Store is an in-memory cache of dataset bundles keyed by dataset ID.
// Safe for concurrent use by request handlers. There is no eviction and
// no persistence; restarts start empty.
type Store struct {
	mu      sync.RWMutex
	bundles map[uuid.UUID]*Bundle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{bundles: make(map[uuid.UUID]*Bundle)}
}

// Save records a bundle under the given dataset ID.
func (s *Store) Save(id uuid.UUID, b *Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[id] = b
}

// Get returns the bundle for a dataset ID.
// Returns false if not found.
func (s *Store) Get(id uuid.UUID) (*Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bundles[id]
	return b, ok
}

// Exists reports whether a dataset ID is known.
func (s *Store) Exists(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bundles[id]
	return ok
}

// Len returns the number of stored datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bundles)
}
