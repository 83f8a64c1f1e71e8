// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/styleatlas/api/internal/platform/apperr"
	"github.com/styleatlas/api/internal/platform/respond"
)

// RequireModerator gates moderation routes behind a shared bearer token.
//
// # Flow
//  1. If no token is configured, requests pass through unchanged. This keeps
//     the open behavior of the legacy deployment unless the operator opts in.
//  2. Otherwise the 'Authorization: Bearer <token>' header must match the
//     configured value (constant-time comparison).
//
// # Parameters
//   - token: The configured moderator token ("" disables the gate).
//
// # Returns
//   - An [http.Handler] middleware.
func RequireModerator(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Gate Disabled ──────────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			authHeader := request.Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Moderator credentials required"))
				return
			}

			// ── 3. Token Comparison ───────────────────────────────────────────
			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
				respond.Error(writer, request, apperr.Unauthorized("Invalid moderator token"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
