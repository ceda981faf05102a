package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a SERVER_ERROR envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("panic: %v", recovered)
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error: types.ErrorInfo{
				Code:    string(errors.ServerError),
				Message: "Internal Server Error",
			},
			Timestamp: time.Now().UTC(),
		})
	})
}
