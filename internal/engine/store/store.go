// Package store provides the engine state storage layer.
package store

import "context"

// StateStore defines the engine state storage interface.
//
// The counter covers every counted request (status and input); health and
// stop do not count.
type StateStore interface {
	// Increment increments the request counter and returns the new value.
	Increment(ctx context.Context) int64
	// Count returns the current counter value without incrementing.
	Count(ctx context.Context) int64
	// Reset resets the counter to zero.
	Reset(ctx context.Context)
	// Running reports whether the engine is serving.
	Running(ctx context.Context) bool
	// SetRunning sets the serving flag.
	SetRunning(ctx context.Context, running bool)
}
