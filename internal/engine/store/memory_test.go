package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kart-io/ai-engine/internal/engine/store"
)

func TestMemoryStore_Increment(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	assert.Equal(t, int64(0), s.Count(ctx))

	for i := int64(1); i <= 5; i++ {
		assert.Equal(t, i, s.Increment(ctx))
	}
	assert.Equal(t, int64(5), s.Count(ctx))
}

func TestMemoryStore_Reset(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	s.Increment(ctx)
	s.Increment(ctx)
	s.Reset(ctx)

	assert.Equal(t, int64(0), s.Count(ctx))
	assert.Equal(t, int64(1), s.Increment(ctx))
}

func TestMemoryStore_Running(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	assert.False(t, s.Running(ctx))

	s.SetRunning(ctx, true)
	assert.True(t, s.Running(ctx))

	s.SetRunning(ctx, false)
	assert.False(t, s.Running(ctx))
}

func TestMemoryStore_ConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	const goroutines = 16
	const perGoroutine = 1000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				s.Increment(ctx)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*perGoroutine), s.Count(ctx))
}
