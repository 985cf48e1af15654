// Package middleware provides middleware configuration options.
package middleware

// Options aggregates all middleware configurations.
// A nil sub-option disables the corresponding middleware, except Recovery,
// RequestID and Logger which are enabled by default.
type Options struct {
	Recovery  *RecoveryOptions  `json:"recovery" mapstructure:"recovery"`
	RequestID *RequestIDOptions `json:"request-id" mapstructure:"request-id"`
	Logger    *LoggerOptions    `json:"logger" mapstructure:"logger"`
	Metrics   *MetricsOptions   `json:"metrics" mapstructure:"metrics"`
}

// NewOptions creates middleware options with defaults.
func NewOptions() *Options {
	return &Options{
		Recovery:  NewRecoveryOptions(),
		RequestID: NewRequestIDOptions(),
		Logger:    NewLoggerOptions(),
		Metrics:   NewMetricsOptions(),
	}
}

// Complete fills nil sub-options that are enabled by default.
func (o *Options) Complete() error {
	if o.Recovery == nil {
		o.Recovery = NewRecoveryOptions()
	}
	if o.RequestID == nil {
		o.RequestID = NewRequestIDOptions()
	}
	if o.Logger == nil {
		o.Logger = NewLoggerOptions()
	}
	// Metrics stays nil when disabled.
	return nil
}

// Validate validates all configured middleware options.
func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.Recovery.Validate()...)
	errs = append(errs, o.RequestID.Validate()...)
	errs = append(errs, o.Logger.Validate()...)
	errs = append(errs, o.Metrics.Validate()...)
	return errs
}
