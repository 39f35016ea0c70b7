package nella

import (
	"errors"
	"fmt"
)

// Common client errors
var (
	// ErrNotAuthenticated indicates that an API request was attempted
	// without an active session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidDateFormat indicates that a backend date string did not
	// match the expected format
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// AuthFailedError represents a failed authentication attempt. Description
// carries the backend's error_description when the response body was
// parseable JSON.
type AuthFailedError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *AuthFailedError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("authentication failed: %s", e.Description)
	}
	return "authentication failed"
}

// RequestFailedError represents a failed API request: a non-200 response or
// a body that could not be parsed as JSON.
type RequestFailedError struct {
	StatusCode int
	Reason     string
}

func (e *RequestFailedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("request failed (HTTP %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("request failed (HTTP %d)", e.StatusCode)
}

// IsRequestFailed returns true if err (or any wrapped error) is a
// RequestFailedError
func IsRequestFailed(err error) bool {
	var reqErr *RequestFailedError
	return errors.As(err, &reqErr)
}

// IsAuthFailed returns true if err (or any wrapped error) is an
// AuthFailedError
func IsAuthFailed(err error) bool {
	var authErr *AuthFailedError
	return errors.As(err, &authErr)
}
