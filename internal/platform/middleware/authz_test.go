// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleatlas/api/internal/platform/middleware"
)

/*
TestRequireModerator covers the bearer-token gate in both its disabled and
enabled configurations.
*/
func TestRequireModerator(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"gate_disabled_no_header", "", "", http.StatusOK},
		{"gate_disabled_ignores_header", "", "Bearer anything", http.StatusOK},
		{"missing_header", "moderator-secret", "", http.StatusUnauthorized},
		{"malformed_header", "moderator-secret", "moderator-secret", http.StatusUnauthorized},
		{"wrong_scheme", "moderator-secret", "Basic moderator-secret", http.StatusUnauthorized},
		{"wrong_token", "moderator-secret", "Bearer nope", http.StatusUnauthorized},
		{"valid_token", "moderator-secret", "Bearer moderator-secret", http.StatusOK},
		{"case_insensitive_scheme", "moderator-secret", "bearer moderator-secret", http.StatusOK},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequireModerator(tt.configured)(next)

			request := httptest.NewRequest(http.MethodPost, "/api/approve", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				resp := struct {
					Error string `json:"error"`
				}{}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}
