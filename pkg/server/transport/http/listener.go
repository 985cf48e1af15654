package http

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/kart-io/logger"

	options "github.com/kart-io/ai-engine/pkg/options/server/http"
)

// listen creates the listener for the configured network.
func (s *Server) listen() (net.Listener, error) {
	if s.opts.Network == options.NetworkUnix {
		return listenUnix(s.opts.SocketPath)
	}
	return net.Listen("tcp", s.opts.Addr)
}

// listenUnix binds a Unix domain socket at path.
//
// A stale socket file from a previous run is removed before binding, the
// parent directory is created if missing, and the socket is restricted to
// the owner (0600). Cleanup failures are logged and the bind itself
// reports whether the path is usable.
func listenUnix(path string) (net.Listener, error) {
	if path == "" {
		return nil, fmt.Errorf("unix socket path is empty")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			logger.Warnw("Failed to create socket directory", "dir", dir, "error", err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		logger.Warnw("Removing stale socket", "path", path)
		if err := os.Remove(path); err != nil {
			logger.Warnw("Failed to remove stale socket", "path", path, "error", err)
		}
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on unix socket %s: %w", path, err)
	}

	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to restrict socket permissions: %w", err)
	}

	return ln, nil
}
