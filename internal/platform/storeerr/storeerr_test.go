// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

package storeerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleatlas/api/internal/platform/apperr"
	"github.com/styleatlas/api/internal/platform/contentstore"
	"github.com/styleatlas/api/internal/platform/storeerr"
)

/*
TestWrap covers the error classification bridge.
*/
func TestWrap(t *testing.T) {
	t.Run("nil_passthrough", func(t *testing.T) {
		assert.Nil(t, storeerr.Wrap(nil, "Failed to fetch styles"))
	})

	t.Run("apperr_passthrough", func(t *testing.T) {
		original := apperr.ValidationError("Missing required fields")
		assert.Same(t, original, apperr.As(storeerr.Wrap(original, "ignored")))
	})

	t.Run("missing_write_token", func(t *testing.T) {
		wrapped := storeerr.Wrap(fmt.Errorf("mutate: %w", contentstore.ErrNoWriteToken), "Failed to create submission")

		ae := apperr.As(wrapped)
		require.NotNil(t, ae)
		assert.Equal(t, "NOT_CONFIGURED", ae.Code)
		assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	})

	t.Run("store_outage", func(t *testing.T) {
		cause := &contentstore.StoreError{Op: "query", StatusCode: http.StatusBadGateway, Body: "down"}
		wrapped := storeerr.Wrap(cause, "Failed to fetch styles")

		ae := apperr.As(wrapped)
		require.NotNil(t, ae)
		assert.Equal(t, "STORE_UNAVAILABLE", ae.Code)
		assert.Equal(t, "Failed to fetch styles", ae.Message)

		// The cause stays attached for server-side logging.
		assert.True(t, errors.Is(wrapped, error(cause)))
	})
}
