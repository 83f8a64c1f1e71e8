// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store client, notifiers) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the StyleAtlas API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8888"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Hosted document store coordinates
	ProjectID string `env:"CONTENT_PROJECT_ID,required"`
	Dataset   string `env:"CONTENT_DATASET"  envDefault:"production"`

	// BaseURL overrides the derived store endpoint. Leave empty in
	// production; tests point it at a local double.
	BaseURL string `env:"CONTENT_BASE_URL"`

	// WriteToken authorizes asset uploads and document mutations.
	// Read projections work without it; /api/submit, /api/approve and
	// /api/reject fail with NOT_CONFIGURED when it is absent.
	WriteToken string `env:"CONTENT_WRITE_TOKEN"`

	// ModeratorToken, when set, gates the moderation endpoints
	// (/api/reviews, /api/approve, /api/reject) behind a bearer check.
	// When empty the endpoints stay open, matching the legacy deployment.
	ModeratorToken string `env:"MODERATOR_TOKEN"`

	// Chat webhook notification (optional)
	WebhookURL string `env:"CHAT_WEBHOOK_URL"`

	// CRM notification (optional; table name has a conventional default)
	CRMAPIKey    string `env:"CRM_API_KEY"`
	CRMBaseID    string `env:"CRM_BASE_ID"`
	CRMBaseURL   string `env:"CRM_BASE_URL"    envDefault:"https://api.airtable.com/v0"`
	CRMTableName string `env:"CRM_TABLE_NAME"  envDefault:"Submissions"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// StoreBaseURL returns the document store endpoint, deriving the hosted
// URL from the project id unless an explicit override is configured.
func (c *Config) StoreBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.api.sanity.io", c.ProjectID)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
