// Package router provides engine routing.
package router

import (
	"github.com/kart-io/logger"

	"github.com/kart-io/ai-engine/internal/engine/handler"
	"github.com/kart-io/ai-engine/pkg/server"
)

// Register registers the engine routes on the manager's HTTP server.
func Register(mgr *server.Manager, engineHandler *handler.EngineHandler) {
	engine := mgr.HTTPServer().Engine()

	engine.GET("/status", engineHandler.Status)
	engine.POST("/input", engineHandler.Input)
	engine.POST("/stop", engineHandler.Stop)
	engine.GET("/health", engineHandler.Health)

	logger.Info("HTTP routes registered")
}
