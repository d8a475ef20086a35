// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes prometheus collectors for the verification flow.
// Scrape them via GET /metrics.
package metrics
