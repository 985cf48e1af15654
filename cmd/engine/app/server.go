// Package app provides the engine application entry.
package app

import (
	"context"

	"github.com/kart-io/ai-engine/cmd/engine/app/options"
	engine "github.com/kart-io/ai-engine/internal/engine"
	"github.com/kart-io/ai-engine/pkg/app"
)

const appDescription = `AI Engine Daemon

A small HTTP daemon serving the engine API over a Unix domain socket or TCP.

This server provides:
  - Status with per-request counter and lucky number
  - Input echo with optional vowel-stripped output
  - Cooperative stop endpoint
  - Health probe`

// NewApp creates a new engine application instance.
func NewApp() *app.App {
	opts := options.NewServerOptions()

	return app.NewApp(
		app.WithName(engine.Name),
		app.WithShortDescription("AI engine daemon"),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return run(opts)
		}),
	)
}

func run(opts *options.ServerOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	ctx := context.Background()
	server, err := cfg.NewServer(ctx)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
