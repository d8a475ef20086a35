// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the CP Gym API server.

CP Gym verifies claimed solutions to competitive-programming problems
against the Codeforces public API, records accepted submissions exactly
once, and serves ranked standings derived from the recorded solves.

# Starting the Server

The server requires a database URL, via environment variable or CLI flag:

	DATABASE_URL=file:cpgym.db go run main.go

Or against postgres:

	go run main.go -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - JUDGE_API_URL (-judge-url): judge API base URL (default Codeforces)
  - JUDGE_TIMEOUT_SECONDS (-judge-timeout): per-fetch bound (default 8)
  - REDIS_URL (-redis-url): enable leaderboard caching
  - LEADERBOARD_TTL_SECONDS (-leaderboard-ttl): cache TTL (default 20)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (verification, verdicts, standings)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - problemid: Problem identifier parsing
  - judge: External judge API client
  - store: Idempotent submission store and derived views
  - db: Schema creation
  - cache: Optional redis leaderboard cache
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
