package errors

import (
	"errors"
	"fmt"
	"strings"
)

// APIError carries the backend's error payload: a human-readable message and
// optional field-level validation errors keyed by field name.
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Sprintf("api error (status %d): %s [%s]", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// AsAPIError unwraps err looking for an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage returns the backend message for surfacing in an alert or toast,
// falling back to a generic string for transport-level failures.
func UserMessage(err error) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
