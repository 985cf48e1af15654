package http

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.sock")

	ln, err := listenUnix(path)
	require.NoError(t, err)
	defer ln.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	conn, err := net.Dial("unix", path)
	require.NoError(t, err)
	conn.Close()
}

func TestListenUnix_RemovesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.sock")

	// Simulate a leftover socket file from a crashed run.
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ln, err := listenUnix(path)
	require.NoError(t, err)
	defer ln.Close()

	conn, err := net.Dial("unix", path)
	require.NoError(t, err)
	conn.Close()
}

func TestListenUnix_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run", "engine")
	path := filepath.Join(dir, "engine.sock")

	ln, err := listenUnix(path)
	require.NoError(t, err)
	defer ln.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListenUnix_EmptyPath(t *testing.T) {
	_, err := listenUnix("")
	assert.Error(t, err)
}
