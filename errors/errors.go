// Package errors defines the structured application errors returned by the
// checklist services and rendered by the HTTP error middleware.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND"
	DuplicateError  ErrorType = "DUPLICATE_ERROR"
	LimitError      ErrorType = "LIMIT_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType   `json:"code"`
	Message    string      `json:"message"`
	Detail     string      `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	HTTPStatus int         `json:"-"`
	Raw        error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the status code the error should be rendered with.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// NotFound reports a checklist or item id that is absent from the store.
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationFailed reports malformed input rejected before reaching a service.
func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ValidationFailedWithDetails is ValidationFailed carrying per-field details
// that are rendered verbatim in the error envelope.
func ValidationFailedWithDetails(message string, details interface{}) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// DuplicateName reports a checklist name that collides case-insensitively
// with another checklist.
func DuplicateName(name string) *AppError {
	return &AppError{
		Type:       DuplicateError,
		Message:    "a checklist with this name already exists",
		Detail:     fmt.Sprintf("name: %s", name),
		HTTPStatus: http.StatusBadRequest,
	}
}

// ItemLimitReached reports a checklist that already holds max items.
func ItemLimitReached(checklistID string, max int) *AppError {
	return &AppError{
		Type:       LimitError,
		Message:    fmt.Sprintf("the checklist has reached the limit of %d items", max),
		Detail:     fmt.Sprintf("Checklist ID: %s", checklistID),
		HTTPStatus: http.StatusBadRequest,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

func IsNotFound(err error) bool  { return IsType(err, NotFoundError) }
func IsDuplicate(err error) bool { return IsType(err, DuplicateError) }
func IsLimit(err error) bool     { return IsType(err, LimitError) }

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError, DuplicateError, LimitError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
