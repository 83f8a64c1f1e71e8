// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

/*
Package constants provides centralized, immutable values for the entire service.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Document Store: API version segments and request limits.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "styleatlas-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Submissions carry inlined base64 screenshots, so this is generous.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Document Store

const (
	// StoreQueryPath is the URL path prefix for GROQ read queries.
	StoreQueryPath = "/v1/data/query/"

	// StoreMutatePath is the URL path prefix for document mutations.
	StoreMutatePath = "/v2021-10-21/data/mutate/"

	// StoreImageAssetPath is the URL path prefix for binary image asset uploads.
	StoreImageAssetPath = "/v2021-10-21/assets/images/"

	// StoreRequestTimeout bounds a single round trip to the document store.
	StoreRequestTimeout = 15 * time.Second

	// MaxScreenshotBytes caps a decoded screenshot payload (the hosted store
	// enforces its own limit; this keeps oversized bodies out of memory).
	MaxScreenshotBytes = 10 << 20
)

// # Notifications

const (
	// NotifyTimeout bounds the best-effort notification fan-out after a
	// submission is created. Outcomes never affect the client response.
	NotifyTimeout = 5 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAllow         = "Allow"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldSuccess = "success"
)
