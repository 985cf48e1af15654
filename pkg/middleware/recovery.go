package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	mwopts "github.com/kart-io/ai-engine/pkg/options/middleware"
)

// PanicHandler is called after a panic has been recovered and logged.
type PanicHandler func(c *gin.Context, err interface{}, stack []byte)

// Recovery returns a middleware that recovers from panics with default options.
func Recovery() gin.HandlerFunc {
	return RecoveryWithOptions(*mwopts.NewRecoveryOptions(), nil)
}

// RecoveryWithOptions returns a Recovery middleware with the given options.
// The full stack trace is always logged; it is only returned to the client
// when opts.EnableStackTrace is set.
func RecoveryWithOptions(opts mwopts.RecoveryOptions, onPanic PanicHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				logger.Errorw("panic recovered",
					"panic", r,
					"stack_trace", string(stack),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				if onPanic != nil {
					onPanic(c, r, stack)
				}

				msg := "Internal server error"
				if opts.EnableStackTrace {
					msg = fmt.Sprintf("panic: %v\n%s", r, stack)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, v1.ErrorResponse{Error: msg})
			}
		}()
		c.Next()
	}
}
