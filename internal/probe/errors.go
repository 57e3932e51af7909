package probe

import (
	"fmt"
)

// ErrorType represents the category of failure observed during a probe
type ErrorType string

const (
	// ErrorTypeTimeout indicates the request exceeded its deadline
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeTransport indicates a network-level error (connection
	// refused, DNS failure, reset, etc.)
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeStatus indicates the transport succeeded but the server
	// answered with an error status (HTTP >= 400)
	ErrorTypeStatus ErrorType = "status"
)

// ProbeError represents a structured failure from a probe operation
type ProbeError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *ProbeError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ProbeError) Unwrap() error {
	return e.Cause
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(cause error) *ProbeError {
	return &ProbeError{
		Type:    ErrorTypeTimeout,
		Message: "request timed out",
		Cause:   cause,
	}
}

// NewTransportError creates a transport error
func NewTransportError(cause error) *ProbeError {
	return &ProbeError{
		Type:    ErrorTypeTransport,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewStatusError creates an HTTP error-status error
func NewStatusError(statusCode int) *ProbeError {
	return &ProbeError{
		Type:       ErrorTypeStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("server returned HTTP %d", statusCode),
	}
}

// ClassifyStatus maps an HTTP status code to a probe outcome:
// anything below 400 counts as success, 400 and above as error.
func ClassifyStatus(statusCode int) Outcome {
	if statusCode >= 400 {
		return OutcomeError
	}
	return OutcomeSuccess
}
