package shipping

import (
	"fmt"
)

// ValidationError reports shipment input that violates a required-field
// or shape invariant. It is recoverable by correcting the input and is
// never retried internally.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// APIError reports a provider call that could not complete: network
// failure, timeout, non-2xx status or an unparsable body. The original
// transport error, when there is one, is preserved as the cause.
type APIError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport error.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates a new APIError with the given cause.
func NewAPIError(message string, cause error) *APIError {
	return &APIError{
		Message: message,
		Cause:   cause,
	}
}

// WithStatusCode adds an HTTP status code to the error.
func (e *APIError) WithStatusCode(code int) *APIError {
	e.StatusCode = code
	return e
}

// ShippingError is the single failure kind surfaced to top-level
// callers. It wraps whatever went wrong downstream, preserving the
// original error as cause.
type ShippingError struct {
	OrderID string
	Cause   error
}

// Error implements the error interface.
func (e *ShippingError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("Failed to ship order %s", e.OrderID)
	}
	return fmt.Sprintf("Failed to ship order %s: %s", e.OrderID, e.Cause.Error())
}

// Unwrap returns the wrapped downstream error.
func (e *ShippingError) Unwrap() error {
	return e.Cause
}
