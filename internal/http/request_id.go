package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"

	// ContextKeyRequestID holds the request ID in the gin context.
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware echoes the caller's X-Request-Id or generates one, and
// stores it in the gin context for log lines.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(requestIDHeader, requestID)
		c.Set(ContextKeyRequestID, requestID)
		c.Next()
	}
}
