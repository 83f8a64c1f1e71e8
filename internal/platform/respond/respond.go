// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// The read and write endpoints each return a small, endpoint-specific JSON
// object ({"styles": …}, {"submissions": …}, {"success": true}); error
// responses always follow the {"error": …} shape. Centralizing the encoding
// here keeps that contract consistent and in one place.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/styleatlas/api/internal/platform/apperr"
	"github.com/styleatlas/api/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON body for successful write operations.
type SuccessEnvelope struct {
	Success bool `json:"success"`
}

// ErrorEnvelope is the JSON body for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload encoded as-is.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Success writes a 200 OK response with the {"success": true} body used by
// the submission and moderation write endpoints.
func Success(writer http.ResponseWriter) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Success: true})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Details: appError.Details,
	})
}
