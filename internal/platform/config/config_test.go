// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleatlas/api/internal/platform/config"
)

/*
TestLoad_Defaults verifies default values with only the required variables set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONTENT_PROJECT_ID", "abc123")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8888", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "production", cfg.Dataset)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.CRMBaseURL)
	assert.Equal(t, "Submissions", cfg.CRMTableName)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

/*
TestLoad_MissingProjectID verifies that the store project id is mandatory.
*/
func TestLoad_MissingProjectID(t *testing.T) {
	// t.Setenv registers the restore; the variable must then be absent, not
	// merely empty, for the required check to trip.
	t.Setenv("CONTENT_PROJECT_ID", "placeholder")
	require.NoError(t, os.Unsetenv("CONTENT_PROJECT_ID"))

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestStoreBaseURL verifies endpoint derivation and the explicit override.
*/
func TestStoreBaseURL(t *testing.T) {
	cfg := &config.Config{ProjectID: "abc123"}
	assert.Equal(t, "https://abc123.api.sanity.io", cfg.StoreBaseURL())

	cfg.BaseURL = "http://127.0.0.1:9999"
	assert.Equal(t, "http://127.0.0.1:9999", cfg.StoreBaseURL())
}
