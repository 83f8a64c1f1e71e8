// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

/*
Package apperr defines the centralized error handling framework for the
StyleAtlas content API.

It provides a rich error type that bridges the gap between low-level store or
integration errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a client-safe message.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.
  - Hiding: The underlying cause is kept for server-side logging only.

Every error that leaves the service layer should be wrapped as an [AppError] to
ensure consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the StyleAtlas API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal store responses or credentials.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "VALIDATION_ERROR").
	Code string `json:"-"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// InvalidScreenshot creates a 400 [AppError] for a screenshot payload that is
// not a base64 image data URI of an accepted MIME type.
func InvalidScreenshot(msg string) *AppError {
	return &AppError{
		Code:       "INVALID_SCREENSHOT_FORMAT",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 400 [AppError] for an id that does not resolve.
//
// Moderation endpoints treat an unresolvable document id as bad client input,
// not as a missing route, so this maps to 400 rather than 404.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// # Server Errors (5xx)

// NotConfigured creates a 500 [AppError] for missing server configuration
// (store project id, dataset, or write token).
func NotConfigured(msg string) *AppError {
	return &AppError{
		Code:       "NOT_CONFIGURED",
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// StoreUnavailable creates a 500 [AppError] wrapping a document store failure.
// The cause (store status, response body) is logged but never sent to clients.
func StoreUnavailable(msg string, cause error) *AppError {
	return &AppError{
		Code:       "STORE_UNAVAILABLE",
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
