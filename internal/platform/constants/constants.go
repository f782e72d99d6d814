// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values shared across wedplan.

Categories:

  - Metadata: application name and version.
  - Timing: startup and shutdown deadlines.
  - Console: input layouts shared by the prompter and the renderer.
  - Redis: key prefixes of the search cache.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "wedplan"
	AppVersion = "0.1.0-dev"
)

// # Timing

const (
	// StartupTimeout bounds connecting to PostgreSQL and Redis at startup.
	StartupTimeout = 30 * time.Second

	// ShutdownTimeout bounds releasing the connection on exit.
	ShutdownTimeout = 5 * time.Second
)

// # Console

const (
	// DateLayout is the only accepted date input format (YYYY-MM-DD).
	DateLayout = time.DateOnly
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSearch = "wedplan:search:"
)
