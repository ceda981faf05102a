package middleware

import (
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured access log line per request.
func RequestLogger() gin.HandlerFunc {
	log := logger.GetLogger().Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
			"bytes", c.Writer.Size(),
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("Request completed", fields...)
		case c.Writer.Status() >= 400:
			log.Warnw("Request completed", fields...)
		default:
			log.Infow("Request completed", fields...)
		}
	}
}
