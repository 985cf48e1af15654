package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	"github.com/kart-io/ai-engine/pkg/client"
)

func TestWatchdog_StopsIdleEngine(t *testing.T) {
	var stopCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, v1.StatusResponse{Type: "status", Count: 1})
	})
	mux.HandleFunc("POST /stop", func(w http.ResponseWriter, r *http.Request) {
		stopCalls.Add(1)
		writeJSON(w, http.StatusOK, v1.StopResponse{Status: "stopping"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := client.New(client.WithTCP(strings.TrimPrefix(srv.URL, "http://")))
	w := client.NewWatchdog(c,
		client.WithPollInterval(10*time.Millisecond),
		client.WithIdleTimeout(30*time.Millisecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, w.Run(ctx))
	assert.Equal(t, int64(1), stopCalls.Load())
}

func TestWatchdog_TouchResetsIdleTimer(t *testing.T) {
	c := client.New()
	w := client.NewWatchdog(c, client.WithIdleTimeout(time.Minute))

	time.Sleep(20 * time.Millisecond)
	require.Greater(t, w.Idle(), 10*time.Millisecond)

	w.Touch()
	assert.Less(t, w.Idle(), 10*time.Millisecond)
}

func TestWatchdog_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(fakeEngine())
	defer srv.Close()

	c := client.New(client.WithTCP(strings.TrimPrefix(srv.URL, "http://")))
	w := client.NewWatchdog(c, client.WithPollInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}
