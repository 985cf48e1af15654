package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	mwopts "github.com/kart-io/ai-engine/pkg/options/middleware"
)

// HeaderXRequestID is the default request ID header.
const HeaderXRequestID = "X-Request-ID"

// ContextKeyRequestID is the gin context key holding the request ID.
const ContextKeyRequestID = "request_id"

// RequestID returns a middleware that adds a unique request ID to each
// request with default options.
func RequestID() gin.HandlerFunc {
	return RequestIDWithOptions(*mwopts.NewRequestIDOptions(), nil)
}

// RequestIDWithOptions returns a RequestID middleware with the given options.
// A non-nil generator overrides the one selected by opts.GeneratorType.
//
// The request ID is taken from the incoming header if present, otherwise
// generated, and is set on both the response header and the gin context.
func RequestIDWithOptions(opts mwopts.RequestIDOptions, generator func() string) gin.HandlerFunc {
	if opts.Header == "" {
		opts.Header = HeaderXRequestID
	}
	if generator == nil {
		generator = generatorFor(opts.GeneratorType)
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(opts.Header)
		if requestID == "" {
			requestID = generator()
		}

		c.Header(opts.Header, requestID)
		c.Set(ContextKeyRequestID, requestID)

		c.Next()
	}
}

// GetRequestID returns the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

func generatorFor(generatorType string) func() string {
	switch generatorType {
	case "ulid":
		return generateULID
	default:
		return generateRandomHex
	}
}

func generateULID() string {
	return ulid.Make().String()
}

func generateRandomHex() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
