// Package errors provides standardized error handling for the insight service.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMissingAPIToken  ErrorCode = "MISSING_API_TOKEN"
	ErrCodeBoardNotFound    ErrorCode = "BOARD_NOT_FOUND"
	ErrCodeMondayAPIFailed  ErrorCode = "MONDAY_API_FAILED"
	ErrCodeMondayAPITimeout ErrorCode = "MONDAY_API_TIMEOUT"
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewMissingAPITokenError creates a non-retryable credential precondition error.
func NewMissingAPITokenError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingAPIToken,
		Message:   "Monday.com API token required",
		Details:   "no token supplied in request or configuration",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBoardNotFoundError creates a non-retryable board resolution error.
func NewBoardNotFoundError(family string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBoardNotFound,
		Message:   "Board could not be resolved",
		Details:   fmt.Sprintf("family: %s", family),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMondayAPIFailedError creates a retryable external API error.
func NewMondayAPIFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMondayAPIFailed,
		Message:   "Monday.com API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMondayAPITimeoutError creates a retryable external API timeout error.
func NewMondayAPITimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMondayAPITimeout,
		Message:   "Monday.com API timeout",
		Details:   "API call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status the API layer should return.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeMissingAPIToken:
		return http.StatusUnauthorized
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeBoardNotFound:
		return http.StatusNotFound
	case ErrCodeMondayAPITimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable reports whether an error carries a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
