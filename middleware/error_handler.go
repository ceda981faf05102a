package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/internal/validation"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorHandler renders the last error pushed with c.Error as an error
// envelope. AppErrors keep their code and status, validator and binding
// failures become VALIDATION_ERROR and anything else is a SERVER_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		appErr := toAppError(last)
		statusCode := appErr.GetHTTPStatus()

		logger.LogHTTPError(c, last.Err, statusCode, fmt.Sprintf("%s error", appErr.Type))

		info := types.ErrorInfo{
			Code:    string(appErr.Type),
			Message: appErr.Message,
		}
		switch {
		case appErr.Details != nil:
			info.Details = appErr.Details
		case appErr.Detail != "" && (gin.IsDebugging() ||
			appErr.Type == errors.ValidationError ||
			appErr.Type == errors.NotFoundError):
			info.Details = appErr.Detail
		}

		c.JSON(statusCode, types.ErrorResponse{
			Success:   false,
			Error:     info,
			Timestamp: time.Now().UTC(),
		})
	}
}

func toAppError(ginErr *gin.Error) *errors.AppError {
	err := ginErr.Err

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		return validation.FromError(verrs)
	}

	if ginErr.Type == gin.ErrorTypeBind || ginErr.Type == gin.ErrorTypePublic {
		return errors.ValidationFailed("invalid request data", err.Error())
	}

	appErr = errors.InternalServerError("Internal Server Error")
	if gin.IsDebugging() {
		appErr.Detail = err.Error()
	}
	return appErr
}

// NotFoundHandler answers unmatched routes with a NOT_FOUND envelope.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Success: false,
			Error: types.ErrorInfo{
				Code:    string(errors.NotFoundError),
				Message: fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
			},
			Timestamp: time.Now().UTC(),
		})
	}
}
