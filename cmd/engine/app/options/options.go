// Package options contains flags and options for initializing the engine server.
package options

import (
	"time"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	engine "github.com/kart-io/ai-engine/internal/engine"
	"github.com/kart-io/ai-engine/pkg/app"
	engineopts "github.com/kart-io/ai-engine/pkg/options/engine"
	logopts "github.com/kart-io/ai-engine/pkg/options/logger"
	middlewareopts "github.com/kart-io/ai-engine/pkg/options/middleware"
	httpopts "github.com/kart-io/ai-engine/pkg/options/server/http"
)

// ServerOptions contains the configuration options for the server.
type ServerOptions struct {
	// HTTPOptions contains HTTP server configuration.
	HTTPOptions *httpopts.Options `json:"http" mapstructure:"http"`

	// LogOptions contains logger configuration.
	LogOptions *logopts.Options `json:"log" mapstructure:"log"`

	// EngineOptions contains engine behavior configuration.
	EngineOptions *engineopts.Options `json:"engine" mapstructure:"engine"`

	// RecoveryOptions contains recovery middleware configuration.
	RecoveryOptions *middlewareopts.RecoveryOptions `json:"recovery" mapstructure:"recovery"`

	// RequestIDOptions contains request ID middleware configuration.
	RequestIDOptions *middlewareopts.RequestIDOptions `json:"request-id" mapstructure:"request-id"`

	// LoggerOptions contains request logger middleware configuration.
	LoggerOptions *middlewareopts.LoggerOptions `json:"logger" mapstructure:"logger"`

	// MetricsOptions contains metrics configuration.
	MetricsOptions *middlewareopts.MetricsOptions `json:"metrics" mapstructure:"metrics"`

	// ShutdownTimeout is the timeout for graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
}

// NewServerOptions creates a ServerOptions instance with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		HTTPOptions:      httpopts.NewOptions(),
		LogOptions:       logopts.NewOptions(),
		EngineOptions:    engineopts.NewOptions(),
		RecoveryOptions:  middlewareopts.NewRecoveryOptions(),
		RequestIDOptions: middlewareopts.NewRequestIDOptions(),
		LoggerOptions:    middlewareopts.NewLoggerOptions(),
		MetricsOptions:   middlewareopts.NewMetricsOptions(),
		ShutdownTimeout:  30 * time.Second,
	}
}

// Flags returns flags for a specific server by section name.
func (o *ServerOptions) Flags() (fss app.NamedFlagSets) {
	o.HTTPOptions.AddFlags(fss.FlagSet("http"))
	o.LogOptions.AddFlags(fss.FlagSet("log"))
	o.EngineOptions.AddFlags(fss.FlagSet("engine"))
	o.RecoveryOptions.AddFlags(fss.FlagSet("middleware"))
	o.RequestIDOptions.AddFlags(fss.FlagSet("middleware"))
	o.LoggerOptions.AddFlags(fss.FlagSet("middleware"))
	o.MetricsOptions.AddFlags(fss.FlagSet("middleware"))

	// misc flags
	fs := fss.FlagSet("misc")
	fs.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", o.ShutdownTimeout, "Graceful shutdown timeout")

	return fss
}

// Complete completes all the required options.
func (o *ServerOptions) Complete() error {
	if err := o.HTTPOptions.Complete(); err != nil {
		return err
	}
	return o.EngineOptions.Complete()
}

// Validate checks whether the options in ServerOptions are valid.
func (o *ServerOptions) Validate() error {
	errs := []error{}

	errs = append(errs, o.HTTPOptions.Validate()...)
	errs = append(errs, o.EngineOptions.Validate()...)
	errs = append(errs, o.RecoveryOptions.Validate()...)
	errs = append(errs, o.RequestIDOptions.Validate()...)
	errs = append(errs, o.LoggerOptions.Validate()...)
	errs = append(errs, o.MetricsOptions.Validate()...)
	if err := o.LogOptions.Validate(); err != nil {
		errs = append(errs, err)
	}

	return utilerrors.NewAggregate(errs)
}

// Config builds an engine.Config based on ServerOptions.
func (o *ServerOptions) Config() (*engine.Config, error) {
	return &engine.Config{
		HTTPOptions:      o.HTTPOptions,
		LogOptions:       o.LogOptions,
		EngineOptions:    o.EngineOptions,
		RecoveryOptions:  o.RecoveryOptions,
		RequestIDOptions: o.RequestIDOptions,
		LoggerOptions:    o.LoggerOptions,
		MetricsOptions:   o.MetricsOptions,
		ShutdownTimeout:  o.ShutdownTimeout,
	}, nil
}
