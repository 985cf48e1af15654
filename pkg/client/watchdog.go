package client

import (
	"context"
	"sync"
	"time"

	"github.com/kart-io/logger"
)

// Supervision defaults for a resident engine process.
const (
	DefaultStatusPollInterval = time.Second
	DefaultIdleTimeout        = 5 * time.Minute
)

// Watchdog supervises a running engine. It polls the status endpoint to
// keep the process alive and requests a stop once no user activity has
// been recorded for the idle timeout.
type Watchdog struct {
	client       *Client
	pollInterval time.Duration
	idleTimeout  time.Duration

	mu           sync.Mutex
	lastActivity time.Time
}

// WatchdogOption configures a Watchdog.
type WatchdogOption func(*Watchdog)

// WithPollInterval sets the status poll interval.
func WithPollInterval(d time.Duration) WatchdogOption {
	return func(w *Watchdog) {
		w.pollInterval = d
	}
}

// WithIdleTimeout sets the idle timeout after which the engine is stopped.
func WithIdleTimeout(d time.Duration) WatchdogOption {
	return func(w *Watchdog) {
		w.idleTimeout = d
	}
}

// NewWatchdog creates a Watchdog for the given client.
func NewWatchdog(client *Client, opts ...WatchdogOption) *Watchdog {
	w := &Watchdog{
		client:       client,
		pollInterval: DefaultStatusPollInterval,
		idleTimeout:  DefaultIdleTimeout,
		lastActivity: time.Now(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Touch records user activity, resetting the idle timer.
func (w *Watchdog) Touch() {
	w.mu.Lock()
	w.lastActivity = time.Now()
	w.mu.Unlock()
}

// Idle reports how long ago the last activity was recorded.
func (w *Watchdog) Idle() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return time.Since(w.lastActivity)
}

// Run polls the engine until the context is canceled or the idle timeout
// is reached. On idle timeout it requests a stop and returns nil.
func (w *Watchdog) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if w.Idle() >= w.idleTimeout {
			logger.Infow("Idle timeout reached, stopping engine", "idle", w.Idle().String())
			if _, err := w.client.Stop(ctx); err != nil {
				return err
			}
			return nil
		}

		status, err := w.client.Status(ctx)
		if err != nil {
			logger.Warnw("Status poll failed", "error", err.Error())
			continue
		}
		logger.Debugw("Status poll", "count", status.Count)
	}
}
