// Package http provides the gin based HTTP transport.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	"github.com/kart-io/ai-engine/pkg/middleware"
	mwopts "github.com/kart-io/ai-engine/pkg/options/middleware"
	options "github.com/kart-io/ai-engine/pkg/options/server/http"
)

// Re-export types from options package for convenience
type (
	// Options contains HTTP server configuration.
	Options = options.Options
	// Option is a function that configures Options.
	Option = options.Option
	// Network selects the listener protocol.
	Network = options.Network
)

// Re-export constants
const (
	NetworkUnix = options.NetworkUnix
	NetworkTCP  = options.NetworkTCP
)

// Re-export option functions
var (
	NewOptions       = options.NewOptions
	WithNetwork      = options.WithNetwork
	WithSocketPath   = options.WithSocketPath
	WithAddr         = options.WithAddr
	WithReadTimeout  = options.WithReadTimeout
	WithWriteTimeout = options.WithWriteTimeout
	WithIdleTimeout  = options.WithIdleTimeout
)

// Server is the HTTP server implementation.
type Server struct {
	opts   *options.Options
	engine *gin.Engine
	server *http.Server
}

// NewServer creates a new HTTP server with the given options.
//
// Middleware is applied here so that every route group registered later
// inherits it.
func NewServer(serverOpts *options.Options, middlewareOpts *mwopts.Options) *Server {
	if serverOpts == nil {
		serverOpts = options.NewOptions()
	}
	if middlewareOpts == nil {
		middlewareOpts = mwopts.NewOptions()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		opts:   serverOpts,
		engine: engine,
	}

	s.applyMiddleware(middlewareOpts)

	return s
}

// Name returns the server name.
func (s *Server) Name() string {
	return fmt.Sprintf("http[%s]", s.opts.Network)
}

// Engine returns the underlying gin.Engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// applyMiddleware applies configured middleware to the engine.
func (s *Server) applyMiddleware(opts *mwopts.Options) {
	_ = opts.Complete()

	s.engine.Use(middleware.RecoveryWithOptions(*opts.Recovery, nil))
	s.engine.Use(middleware.RequestIDWithOptions(*opts.RequestID, nil))
	s.engine.Use(middleware.LoggerWithOptions(*opts.Logger))

	// Metrics middleware and scrape endpoint (disabled when nil)
	if opts.Metrics != nil {
		collector := middleware.NewMetricsCollector(opts.Metrics.Namespace, opts.Metrics.Subsystem)
		s.engine.Use(middleware.MetricsWithOptions(*opts.Metrics, collector))
		s.engine.GET(opts.Metrics.Path, gin.WrapH(collector.Handler()))
	}
}

// Start starts the HTTP server. It does not block; listen errors after
// startup are logged by the serve goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "Not found"})
	})

	ln, err := s.listen()
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  s.opts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Stop stops the HTTP server gracefully. The Unix socket file is unlinked
// when the listener closes.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
