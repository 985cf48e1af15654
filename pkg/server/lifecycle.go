package server

import "context"

// Runnable is a server that can be started and stopped by the Manager.
type Runnable interface {
	// Name returns the server name for logging.
	Name() string
	// Start starts the server. It must not block.
	Start(ctx context.Context) error
	// Stop stops the server gracefully, bounded by ctx.
	Stop(ctx context.Context) error
}
