// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package constants provides centralized, immutable values shared by the seed
generator, its subcommands and the preview server.

Categories:

  - Metadata: application name and version used in logs.
  - Server Timing: Read/Write/Idle timeouts for the preview server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Headers and JSON fields: keys shared by middleware and handlers.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "oshidora-seed"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout covers a full dataset generation plus the response.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 45 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 5.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 10

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldCode   = "code"
	FieldError  = "error"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes

const (
	// RedisPrefixRanking namespaces published ranking sorted sets.
	RedisPrefixRanking = "ranking:"

	// RankingKeyTTL keeps a published snapshot around for one week plus a day.
	RankingKeyTTL = 8 * 24 * time.Hour
)
