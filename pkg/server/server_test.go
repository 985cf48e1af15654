package server_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	"github.com/kart-io/ai-engine/pkg/client"
	httpopts "github.com/kart-io/ai-engine/pkg/options/server/http"
	"github.com/kart-io/ai-engine/pkg/server"
)

func newTestManager(t *testing.T, socketPath string) *server.Manager {
	t.Helper()

	opts := httpopts.NewOptions()
	opts.ApplyOptions(httpopts.WithSocketPath(socketPath))

	mgr := server.NewManager(
		server.WithHTTPOptions(opts),
		server.WithShutdownTimeout(2*time.Second),
	)

	engine := mgr.HTTPServer().Engine()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, v1.HealthResponse{Status: v1.StatusOK})
	})
	engine.POST("/stop", func(c *gin.Context) {
		mgr.Shutdown()
		c.JSON(http.StatusOK, v1.StopResponse{Status: v1.StatusStopping})
	})

	return mgr
}

func TestManager_CooperativeShutdown(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "engine.sock")
	mgr := newTestManager(t, socketPath)

	done := make(chan error, 1)
	go func() {
		done <- mgr.Run()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := client.New(client.WithSocket(socketPath))
	require.NoError(t, c.WaitReady(ctx, 20, 50*time.Millisecond))

	stop, err := c.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stopping", stop.Status)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("manager did not shut down after stop request")
	}

	// The socket file is unlinked when the listener closes.
	_, err = os.Stat(socketPath)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_StartTwiceFails(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "engine.sock")
	mgr := newTestManager(t, socketPath)

	ctx := context.Background()
	require.NoError(t, mgr.Start(ctx))
	defer mgr.Stop(ctx)

	assert.Error(t, mgr.Start(ctx))
}

func TestManager_ShutdownIsIdempotent(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "engine.sock")
	mgr := newTestManager(t, socketPath)

	mgr.Shutdown()
	mgr.Shutdown()
}

func TestManager_StopWithoutStart(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "engine.sock")
	mgr := newTestManager(t, socketPath)

	assert.NoError(t, mgr.Stop(context.Background()))
}
