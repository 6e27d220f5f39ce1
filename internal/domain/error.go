package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable machine-readable error codes emitted by the gateway itself.
// Proxy mode may additionally surface coordinator-supplied codes verbatim.
const (
	CodeRunAlreadyExists          = "run_already_exists"
	CodeRunNotFound               = "run_not_found"
	CodeRunCoordinatorUnavailable = "run_coordinator_unavailable"
	CodeInternalError             = "internal_error"
)

// APIError is the gateway's standard structured failure: a stable code, a
// human message, an HTTP-equivalent status, and optional structured details.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsAPIError unwraps err into an *APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewRunAlreadyExists reports a caller-supplied run identifier collision.
func NewRunAlreadyExists(runID string) *APIError {
	return &APIError{
		Code:    CodeRunAlreadyExists,
		Message: fmt.Sprintf("Run '%s' already exists", runID),
		Status:  http.StatusConflict,
	}
}

// NewRunNotFound reports a lookup miss on get/cancel.
func NewRunNotFound(runID string) *APIError {
	return &APIError{
		Code:    CodeRunNotFound,
		Message: fmt.Sprintf("Run '%s' not found", runID),
		Status:  http.StatusNotFound,
	}
}

// NewRunCoordinatorUnavailable wraps a non-API-shaped downstream fault
// (network failure, timeout, unexpected response).
func NewRunCoordinatorUnavailable(baseURL string, cause error) *APIError {
	return &APIError{
		Code:    CodeRunCoordinatorUnavailable,
		Message: "Run Coordinator request failed",
		Status:  http.StatusBadGateway,
		Details: map[string]interface{}{
			"run_coordinator_url": baseURL,
			"error":               cause.Error(),
		},
	}
}
