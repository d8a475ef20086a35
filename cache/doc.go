// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cache is an optional redis-backed TTL cache for leaderboard
// payloads. When REDIS_URL is unset the engine computes standings on every
// read; with it set, reads within the TTL window share one computation.
package cache
