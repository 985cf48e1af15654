// Package server provides server manager configuration options.
package server

import (
	"time"

	mwopts "github.com/kart-io/ai-engine/pkg/options/middleware"
	httpopts "github.com/kart-io/ai-engine/pkg/options/server/http"
)

// Options contains server manager configuration.
type Options struct {
	// HTTP contains the HTTP transport configuration.
	HTTP *httpopts.Options `json:"http" mapstructure:"http"`
	// Middleware contains the middleware configuration.
	Middleware *mwopts.Options `json:"middleware" mapstructure:"middleware"`
	// ShutdownTimeout is the timeout for graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
}

// Option is a function that configures Options.
type Option func(*Options)

// NewOptions creates a new Options with default values.
func NewOptions() *Options {
	return &Options{
		HTTP:            httpopts.NewOptions(),
		Middleware:      mwopts.NewOptions(),
		ShutdownTimeout: 30 * time.Second,
	}
}

// WithHTTPOptions sets the HTTP transport configuration.
func WithHTTPOptions(opts *httpopts.Options) Option {
	return func(o *Options) {
		o.HTTP = opts
	}
}

// WithMiddleware sets the middleware configuration.
func WithMiddleware(opts *mwopts.Options) Option {
	return func(o *Options) {
		o.Middleware = opts
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.ShutdownTimeout = d
	}
}
