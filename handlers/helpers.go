package handlers

import (
	apperrors "github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/internal/validation"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// pathID returns the :id path parameter, or sets a validation error and
// returns false when it is not a UUID.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !isValidUUID(id) {
		_ = c.Error(apperrors.ValidationFailedWithDetails("invalid request data", []types.FieldError{
			{Field: "id", Message: "id must be a valid UUID"},
		}))
		return "", false
	}
	return id, true
}

// bindJSONOrError binds JSON request body and sets validation error if binding fails.
// Returns true if binding succeeded, false if error was set (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(validation.FromError(err))
		return false
	}
	return true
}
