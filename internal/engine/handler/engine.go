// Package handler provides the engine HTTP handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/ai-engine/internal/engine/biz"
	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
)

// ShutdownFunc requests a cooperative server shutdown.
type ShutdownFunc func()

// EngineHandler handles engine HTTP requests.
type EngineHandler struct {
	svc      *biz.EngineService
	shutdown ShutdownFunc
}

// NewEngineHandler creates a new EngineHandler.
func NewEngineHandler(svc *biz.EngineService, shutdown ShutdownFunc) *EngineHandler {
	return &EngineHandler{
		svc:      svc,
		shutdown: shutdown,
	}
}

// Status handles GET /status. Each call counts against the request counter.
func (h *EngineHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status(c.Request.Context()))
}

// Input handles POST /input.
//
// The body must be a JSON object with an "input" string field. An empty
// string is a valid input; a missing field or an empty object is not.
func (h *EngineHandler) Input(c *gin.Context) {
	var data map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&data); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "Invalid JSON"})
		return
	}

	raw, ok := data["input"]
	if len(data) == 0 || !ok {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "No input provided"})
		return
	}

	var input string
	if err := json.Unmarshal(raw, &input); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "Invalid JSON"})
		return
	}

	c.JSON(http.StatusOK, h.svc.ProcessInput(c.Request.Context(), input))
}

// Stop handles POST /stop. The shutdown request is cooperative: the
// response is delivered before the listener drains.
func (h *EngineHandler) Stop(c *gin.Context) {
	logger.Info("Stop requested via API")
	if h.shutdown != nil {
		h.shutdown()
	}
	c.JSON(http.StatusOK, v1.StopResponse{Status: v1.StatusStopping})
}

// Health handles GET /health. It does not touch the request counter.
func (h *EngineHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, v1.HealthResponse{Status: v1.StatusOK})
}
