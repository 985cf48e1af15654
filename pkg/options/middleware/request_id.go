package middleware

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/kart-io/ai-engine/pkg/options"
)

// RequestIDOptions defines request ID middleware options.
// The struct must stay JSON serializable; runtime dependencies (such as a
// custom generator) are injected through function parameters instead.
type RequestIDOptions struct {
	Header string `json:"header" mapstructure:"header"`
	// GeneratorType selects the ID generator:
	//   - "random" or "hex": cryptographically random hex string (32 chars)
	//   - "ulid": ULID generator (26 chars, time sortable)
	GeneratorType string `json:"generator-type" mapstructure:"generator-type"`
}

// NewRequestIDOptions creates default request ID middleware options.
func NewRequestIDOptions() *RequestIDOptions {
	return &RequestIDOptions{
		Header:        "X-Request-ID",
		GeneratorType: "ulid",
	}
}

// AddFlags adds flags for request ID options to the specified FlagSet.
func (o *RequestIDOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Header, options.Join(prefixes...)+"middleware.request-id.header", o.Header, "Request ID header name.")
	fs.StringVar(&o.GeneratorType, options.Join(prefixes...)+"middleware.request-id.generator", o.GeneratorType, "ID generator type: random/hex or ulid.")
}

// Validate validates the request ID options.
func (o *RequestIDOptions) Validate() []error {
	if o == nil {
		return nil
	}
	var errs []error
	if o.Header == "" {
		errs = append(errs, errors.New("request ID header name is required"))
	}
	switch o.GeneratorType {
	case "", "random", "hex", "ulid":
	default:
		errs = append(errs, errors.New("invalid generator type: must be 'random', 'hex', or 'ulid'"))
	}
	return errs
}

// Complete completes the request ID options with defaults.
func (o *RequestIDOptions) Complete() error {
	return nil
}
