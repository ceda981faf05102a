package types

import "time"

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Success  bool         `json:"success"`
	Data     interface{}  `json:"data"`
	Metadata ResponseMeta `json:"metadata"`
}

type ResponseMeta struct {
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the envelope for every failed API response.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorInfo `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse is the data payload of delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
