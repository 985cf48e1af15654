package store

import (
	"context"
	"sync/atomic"
)

// MemoryStore is an in-memory StateStore.
type MemoryStore struct {
	counter atomic.Int64
	running atomic.Bool
}

var _ StateStore = (*MemoryStore)(nil)

// NewMemoryStore creates a new MemoryStore with a zero counter.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Increment increments the request counter and returns the new value.
func (s *MemoryStore) Increment(_ context.Context) int64 {
	return s.counter.Add(1)
}

// Count returns the current counter value.
func (s *MemoryStore) Count(_ context.Context) int64 {
	return s.counter.Load()
}

// Reset resets the counter to zero.
func (s *MemoryStore) Reset(_ context.Context) {
	s.counter.Store(0)
}

// Running reports whether the engine is serving.
func (s *MemoryStore) Running(_ context.Context) bool {
	return s.running.Load()
}

// SetRunning sets the serving flag.
func (s *MemoryStore) SetRunning(_ context.Context, running bool) {
	s.running.Store(running)
}
