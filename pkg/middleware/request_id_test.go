package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kart-io/ai-engine/pkg/middleware"
	mwopts "github.com/kart-io/ai-engine/pkg/options/middleware"
)

func newRequestIDEngine(opts mwopts.RequestIDOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestIDWithOptions(opts, nil))
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return engine
}

func TestRequestID_GeneratesID(t *testing.T) {
	engine := newRequestIDEngine(*mwopts.NewRequestIDOptions())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(middleware.HeaderXRequestID)
	assert.NotEmpty(t, id)
	// ULID is 26 characters
	assert.Len(t, id, 26)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_PreservesIncomingID(t *testing.T) {
	engine := newRequestIDEngine(*mwopts.NewRequestIDOptions())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderXRequestID, "incoming-id")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "incoming-id", w.Header().Get(middleware.HeaderXRequestID))
	assert.Equal(t, "incoming-id", w.Body.String())
}

func TestRequestID_RandomHexGenerator(t *testing.T) {
	opts := mwopts.RequestIDOptions{Header: "X-Request-ID", GeneratorType: "hex"}
	engine := newRequestIDEngine(opts)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Len(t, w.Header().Get("X-Request-ID"), 32)
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	engine := newRequestIDEngine(*mwopts.NewRequestIDOptions())

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		seen[w.Header().Get(middleware.HeaderXRequestID)] = struct{}{}
	}
	assert.Len(t, seen, 10)
}
