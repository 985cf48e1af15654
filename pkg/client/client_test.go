package client_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	"github.com/kart-io/ai-engine/pkg/client"
)

// fakeEngine replicates the engine wire contract for client tests.
func fakeEngine() http.Handler {
	var counter atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, v1.StatusResponse{
			Type:      "status",
			Message:   "Here is your lucky number: 7",
			Count:     counter.Add(1),
			Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
		})
	})
	mux.HandleFunc("POST /input", func(w http.ResponseWriter, r *http.Request) {
		var req v1.InputRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, v1.ErrorResponse{Error: "Invalid JSON"})
			return
		}
		output := strings.ReplaceAll(req.Input, "e", "")
		writeJSON(w, http.StatusOK, v1.InputResponse{
			Type:    "user_input",
			Input:   req.Input,
			Message: "You said: " + req.Input,
			Output:  &output,
			Count:   counter.Add(1),
		})
	})
	mux.HandleFunc("POST /stop", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, v1.StopResponse{Status: "stopping"})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, v1.HealthResponse{Status: "ok"})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_TCP(t *testing.T) {
	srv := httptest.NewServer(fakeEngine())
	defer srv.Close()

	c := client.New(client.WithTCP(strings.TrimPrefix(srv.URL, "http://")))
	ctx := context.Background()

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Count)
	assert.Contains(t, status.Message, "lucky number")

	input, err := c.SendInput(ctx, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "You said: Hello", input.Message)
	assert.Equal(t, int64(2), input.Count)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	stop, err := c.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stopping", stop.Status)
}

func TestClient_UnixSocket(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "engine.sock")

	ln, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	srv := &http.Server{Handler: fakeEngine()}
	go srv.Serve(ln)
	defer srv.Close()

	c := client.New(client.WithSocket(socketPath))

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestClient_WaitReady(t *testing.T) {
	srv := httptest.NewServer(fakeEngine())
	defer srv.Close()

	c := client.New(client.WithTCP(strings.TrimPrefix(srv.URL, "http://")))
	assert.NoError(t, c.WaitReady(context.Background(), 3, 10*time.Millisecond))
}

func TestClient_WaitReady_Unreachable(t *testing.T) {
	c := client.New(
		client.WithSocket(filepath.Join(t.TempDir(), "missing.sock")),
		client.WithTimeout(100*time.Millisecond),
	)

	err := c.WaitReady(context.Background(), 2, 10*time.Millisecond)
	assert.Error(t, err)
}

func TestClient_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, v1.ErrorResponse{Error: "No input provided"})
	}))
	defer srv.Close()

	c := client.New(client.WithTCP(strings.TrimPrefix(srv.URL, "http://")))

	_, err := c.SendInput(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No input provided")
}
