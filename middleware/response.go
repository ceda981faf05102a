package middleware

import (
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
)

// Success writes data inside the success envelope.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, types.SuccessResponse{
		Success:  true,
		Data:     data,
		Metadata: types.ResponseMeta{Timestamp: time.Now().UTC()},
	})
}
