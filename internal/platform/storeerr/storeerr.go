// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

// Package storeerr provides a bridge between low-level document store errors
// and higher-level application errors.
package storeerr

import (
	"errors"

	"github.com/styleatlas/api/internal/platform/apperr"
	"github.com/styleatlas/api/internal/platform/contentstore"
)

// Wrap inspects a store error and wraps it into a meaningful [apperr.AppError].
// It hides the store's response details from the client while classifying the
// error type. The message is the generic, endpoint-specific text the client
// is allowed to see (e.g. "Failed to fetch styles").
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 1. AppErrors pass through untouched (already classified upstream).
	if apperr.IsAppError(err) {
		return err
	}

	// 2. A missing write credential is a deployment problem, not a store outage.
	if errors.Is(err, contentstore.ErrNoWriteToken) {
		return apperr.NotConfigured("Write access to the content store is not configured")
	}

	// 3. Everything else (transport failure, non-2xx store response) becomes
	// a generic store failure; the cause is retained for server-side logs.
	return apperr.StoreUnavailable(message, err)
}
