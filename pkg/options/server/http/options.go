// Package http provides HTTP server configuration options.
package http

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/kart-io/ai-engine/pkg/options"
	"github.com/spf13/pflag"
)

var _ options.IOptions = (*Options)(nil)

// Network selects the listener protocol for the HTTP server.
type Network string

const (
	// NetworkUnix serves HTTP over a Unix domain socket.
	NetworkUnix Network = "unix"
	// NetworkTCP serves HTTP over a TCP socket.
	NetworkTCP Network = "tcp"
)

// SocketEnvVar overrides the default Unix socket path when set.
const SocketEnvVar = "AI_ENGINE_SOCKET"

// DefaultSocketPath is used when neither the flag nor SocketEnvVar is set.
const DefaultSocketPath = "/tmp/ai-engine.sock"

// Options contains HTTP server configuration.
type Options struct {
	// Network is the listener protocol, "unix" or "tcp".
	Network Network `json:"network" mapstructure:"network"`
	// SocketPath is the Unix socket path. Only used when Network is "unix".
	SocketPath string `json:"socket-path" mapstructure:"socket-path"`
	// Addr is the TCP address to listen on. Only used when Network is "tcp".
	Addr string `json:"addr" mapstructure:"addr"`
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `json:"read-timeout" mapstructure:"read-timeout"`
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `json:"write-timeout" mapstructure:"write-timeout"`
	// IdleTimeout is the maximum amount of time to wait for the next request.
	IdleTimeout time.Duration `json:"idle-timeout" mapstructure:"idle-timeout"`
}

// Option is a function that configures Options.
type Option func(*Options)

// NewOptions creates a new Options with default values.
func NewOptions() *Options {
	return &Options{
		Network:      NetworkUnix,
		SocketPath:   "",
		Addr:         "127.0.0.1:8000",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// AddFlags adds flags for HTTP options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar((*string)(&o.Network), options.Join(prefixes...)+"http.network", string(o.Network), "Listener protocol (unix|tcp).")
	fs.StringVar(&o.SocketPath, options.Join(prefixes...)+"http.socket-path", o.SocketPath, "Unix socket path. Defaults to $"+SocketEnvVar+" or "+DefaultSocketPath+".")
	fs.StringVar(&o.Addr, options.Join(prefixes...)+"http.addr", o.Addr, "TCP bind address and port.")
	fs.DurationVar(&o.ReadTimeout, options.Join(prefixes...)+"http.read-timeout", o.ReadTimeout, "Timeout for reading the entire request.")
	fs.DurationVar(&o.WriteTimeout, options.Join(prefixes...)+"http.write-timeout", o.WriteTimeout, "Timeout before timing out writes of the response.")
	fs.DurationVar(&o.IdleTimeout, options.Join(prefixes...)+"http.idle-timeout", o.IdleTimeout, "Maximum amount of time to wait for the next request.")
}

// Validate validates the HTTP options.
func (o *Options) Validate() []error {
	if o == nil {
		return nil
	}

	var errs []error

	switch o.Network {
	case NetworkUnix, NetworkTCP:
	default:
		errs = append(errs, fmt.Errorf("http.network must be %q or %q, got %q", NetworkUnix, NetworkTCP, o.Network))
	}
	if o.Network == NetworkTCP {
		if o.Addr == "" {
			errs = append(errs, fmt.Errorf("http.addr cannot be empty"))
		} else if _, _, err := net.SplitHostPort(o.Addr); err != nil {
			errs = append(errs, fmt.Errorf("http.addr %q is not a valid host:port: %w", o.Addr, err))
		}
	}
	if o.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http.read-timeout must be positive"))
	}
	if o.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http.write-timeout must be positive"))
	}

	return errs
}

// Complete completes the HTTP options with defaults.
// The Unix socket path falls back to SocketEnvVar, then DefaultSocketPath.
func (o *Options) Complete() error {
	if o.SocketPath == "" {
		if env := os.Getenv(SocketEnvVar); env != "" {
			o.SocketPath = env
		} else {
			o.SocketPath = DefaultSocketPath
		}
	}
	return nil
}

// ListenAddr returns the effective listen address for the configured network.
func (o *Options) ListenAddr() string {
	if o.Network == NetworkUnix {
		return o.SocketPath
	}
	return o.Addr
}

// WithNetwork sets the listener protocol.
func WithNetwork(network Network) Option {
	return func(o *Options) {
		o.Network = network
	}
}

// WithSocketPath sets the Unix socket path.
func WithSocketPath(path string) Option {
	return func(o *Options) {
		o.SocketPath = path
	}
}

// WithAddr sets the TCP listen address.
func WithAddr(addr string) Option {
	return func(o *Options) {
		o.Addr = addr
	}
}

// WithReadTimeout sets the read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.ReadTimeout = d
	}
}

// WithWriteTimeout sets the write timeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.WriteTimeout = d
	}
}

// WithIdleTimeout sets the idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.IdleTimeout = d
	}
}

// ApplyOptions applies the given options to the Options.
func (o *Options) ApplyOptions(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
