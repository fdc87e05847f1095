// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies an API failure for retry and display decisions.
type ErrorKind string

const (
	// ErrorNetwork is a transport-level failure (connection refused,
	// timeout). Retryable.
	ErrorNetwork ErrorKind = "network"
	// ErrorAuth is a 401 or token-related failure. Never retried; the
	// stored credential is cleared.
	ErrorAuth ErrorKind = "auth"
	// ErrorValidation is a 4xx with structured field errors. Surfaced
	// verbatim, not retried.
	ErrorValidation ErrorKind = "validation"
	// ErrorServer is a 5xx. Retryable with bounded backoff.
	ErrorServer ErrorKind = "server"
	// ErrorUnknown is anything else. Surfaced, not retried.
	ErrorUnknown ErrorKind = "unknown"
)

// APIError is the structured error state recorded for every failed API
// operation. Retryable drives whether the UI offers a retry action.
type APIError struct {
	Fields     map[string]string
	Kind       ErrorKind
	Message    string
	StatusCode int
	Retryable  bool
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Common application errors.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrMissingConfig    = errors.New("missing configuration")
	ErrSessionClosed    = errors.New("session closed")
)

// authMessagePatterns mark a failure as auth-related even when the
// status code is not 401.
var authMessagePatterns = []string{"token", "unauthorized", "expired", "invalid"}

// isAuthMessage reports whether a server message matches the auth
// failure patterns.
func isAuthMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, p := range authMessagePatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// ClassifyHTTP builds an APIError from an HTTP response status and the
// decoded server message.
func ClassifyHTTP(status int, message string, fields map[string]string) *APIError {
	switch {
	case status == http.StatusUnauthorized || isAuthMessage(message):
		return &APIError{
			Kind:       ErrorAuth,
			Message:    message,
			StatusCode: status,
			Retryable:  false,
		}
	case status >= 500:
		return &APIError{
			Kind:       ErrorServer,
			Message:    message,
			StatusCode: status,
			Retryable:  true,
		}
	case status >= 400 && len(fields) > 0:
		return &APIError{
			Kind:       ErrorValidation,
			Message:    message,
			StatusCode: status,
			Fields:     fields,
			Retryable:  false,
		}
	default:
		return &APIError{
			Kind:       ErrorUnknown,
			Message:    message,
			StatusCode: status,
			Retryable:  false,
		}
	}
}

// ClassifyTransport wraps a fetch-level error (no HTTP response) as a
// retryable network failure. Context cancellation passes through
// untouched so callers can distinguish user cancellation.
func ClassifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &APIError{
		Kind:      ErrorNetwork,
		Message:   err.Error(),
		Retryable: true,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}

// IsAuthError reports whether the failure should clear credentials.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrorAuth
}

// AsAPIError extracts the structured error, wrapping unclassified errors
// as unknown so callers always have a displayable descriptor.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: ErrorUnknown, Message: err.Error()}
}
