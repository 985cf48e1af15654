// Package client provides a typed HTTP client for the engine API,
// speaking over a Unix domain socket or TCP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	httpopts "github.com/kart-io/ai-engine/pkg/options/server/http"
)

// Readiness probe defaults, matching the engine supervisor.
const (
	DefaultHealthCheckRetries  = 20
	DefaultHealthCheckInterval = 500 * time.Millisecond
)

// Client is a typed client for the engine API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithSocket connects over the given Unix socket path.
func WithSocket(path string) Option {
	return func(c *Client) {
		c.httpClient.Transport = unixTransport(path)
		c.baseURL = "http://unix"
	}
}

// WithTCP connects over TCP to the given host:port.
func WithTCP(addr string) Option {
	return func(c *Client) {
		c.httpClient.Transport = nil
		c.baseURL = "http://" + addr
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a Client. Without options it connects over the default Unix
// socket ($AI_ENGINE_SOCKET or /tmp/ai-engine.sock).
func New(opts ...Option) *Client {
	socketPath := os.Getenv(httpopts.SocketEnvVar)
	if socketPath == "" {
		socketPath = httpopts.DefaultSocketPath
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: unixTransport(socketPath),
			Timeout:   10 * time.Second,
		},
		baseURL: "http://unix",
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

func unixTransport(path string) *http.Transport {
	return &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", path)
		},
	}
}

// Status fetches the engine status. The call counts against the engine's
// request counter.
func (c *Client) Status(ctx context.Context) (*v1.StatusResponse, error) {
	var resp v1.StatusResponse
	if err := c.do(ctx, http.MethodGet, "/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendInput sends user input to the engine.
func (c *Client) SendInput(ctx context.Context, input string) (*v1.InputResponse, error) {
	var resp v1.InputResponse
	if err := c.do(ctx, http.MethodPost, "/input", v1.InputRequest{Input: input}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop requests a cooperative engine shutdown.
func (c *Client) Stop(ctx context.Context) (*v1.StopResponse, error) {
	var resp v1.StopResponse
	if err := c.do(ctx, http.MethodPost, "/stop", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health probes the engine health endpoint.
func (c *Client) Health(ctx context.Context) (*v1.HealthResponse, error) {
	var resp v1.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WaitReady polls the health endpoint until the engine responds, up to
// retries attempts spaced by interval. Non-positive arguments fall back
// to the defaults.
func (c *Client) WaitReady(ctx context.Context, retries int, interval time.Duration) error {
	if retries <= 0 {
		retries = DefaultHealthCheckRetries
	}
	if interval <= 0 {
		interval = DefaultHealthCheckInterval
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}

		resp, err := c.Health(ctx)
		if err == nil && resp.Status == v1.StatusOK {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("engine not ready after %d attempts: %w", retries, lastErr)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr v1.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
