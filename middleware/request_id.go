package middleware

import (
	"github.com/NomadCrew/nomad-checklist-backend/internal/events"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the key used to store the request ID in the gin context
	RequestIDKey = logger.RequestIDKey

	RequestIDHeader = "X-Request-ID"
)

// RequestIDMiddleware adds a unique request ID to each request. The ID also
// becomes the correlation ID of events published while serving it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if request already has an ID from a load balancer or proxy
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(events.WithCorrelationID(c.Request.Context(), requestID))

		c.Next()
	}
}
