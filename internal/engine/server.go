// Package engine provides the AI engine server implementation.
package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kart-io/logger"

	"github.com/kart-io/ai-engine/internal/engine/biz"
	"github.com/kart-io/ai-engine/internal/engine/handler"
	"github.com/kart-io/ai-engine/internal/engine/router"
	"github.com/kart-io/ai-engine/internal/engine/store"
	"github.com/kart-io/ai-engine/pkg/app"
	engineopts "github.com/kart-io/ai-engine/pkg/options/engine"
	logopts "github.com/kart-io/ai-engine/pkg/options/logger"
	middlewareopts "github.com/kart-io/ai-engine/pkg/options/middleware"
	httpopts "github.com/kart-io/ai-engine/pkg/options/server/http"
	"github.com/kart-io/ai-engine/pkg/server"
)

// Name is the name of the application.
const Name = "ai-engine"

// Config contains application-related configurations.
type Config struct {
	HTTPOptions      *httpopts.Options
	LogOptions       *logopts.Options
	EngineOptions    *engineopts.Options
	RecoveryOptions  *middlewareopts.RecoveryOptions
	RequestIDOptions *middlewareopts.RequestIDOptions
	LoggerOptions    *middlewareopts.LoggerOptions
	MetricsOptions   *middlewareopts.MetricsOptions
	ShutdownTimeout  time.Duration
}

// Server represents the engine server.
type Server struct {
	srv   *server.Manager
	state store.StateStore
}

// NewServer initializes and returns a new Server instance.
func (cfg *Config) NewServer(_ context.Context) (*Server, error) {
	printBanner(cfg)

	// 1. Initialize logging
	cfg.LogOptions.AddInitialField("service.name", Name)
	cfg.LogOptions.AddInitialField("service.version", app.GetVersion())
	if err := cfg.LogOptions.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting engine service...")

	// 2. Initialize the store layer
	stateStore := store.NewMemoryStore()
	logger.Info("Store layer initialized")

	// 3. Initialize the biz layer
	engineService := biz.NewEngineService(stateStore, cfg.EngineOptions)
	logger.Info("Business layer initialized")

	// 4. Initialize the server manager
	serverManager := server.NewManager(
		server.WithHTTPOptions(cfg.HTTPOptions),
		server.WithMiddleware(cfg.GetMiddlewareOptions()),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
	)

	// 5. Initialize the handler layer, wired to cooperative shutdown
	engineHandler := handler.NewEngineHandler(engineService, serverManager.Shutdown)
	logger.Info("Handler layer initialized")

	// 6. Register routes
	router.Register(serverManager, engineHandler)

	logger.Info("Engine service is ready")
	return &Server{srv: serverManager, state: stateStore}, nil
}

// Run starts the server and blocks until shutdown completes.
func (s *Server) Run(ctx context.Context) error {
	s.state.SetRunning(ctx, true)
	err := s.srv.Run()
	s.state.SetRunning(ctx, false)
	return err
}

// GetMiddlewareOptions builds middleware options from individual configurations.
func (cfg *Config) GetMiddlewareOptions() *middlewareopts.Options {
	return &middlewareopts.Options{
		Recovery:  cfg.RecoveryOptions,
		RequestID: cfg.RequestIDOptions,
		Logger:    cfg.LoggerOptions,
		Metrics:   cfg.MetricsOptions,
	}
}

func printBanner(cfg *Config) {
	fmt.Printf("Starting %s...\n", Name)
	fmt.Printf("  pid:     %d\n", os.Getpid())
	fmt.Printf("  network: %s\n", cfg.HTTPOptions.Network)
	fmt.Printf("  addr:    %s\n", cfg.HTTPOptions.ListenAddr())
}
