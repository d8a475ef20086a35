// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package problemid parses human-entered problem identifiers like "2119B"
// into a contest number and an in-contest index. Pure, no I/O.
package problemid
