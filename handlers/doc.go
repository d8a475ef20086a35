// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the CP Gym API.

# Handler Types

Each handler is a struct with database, config, and client dependencies:

  - SubmissionHandler: verification flow and submission read paths
  - LeaderboardHandler: standings views (all-time, weekly, per-handle)

Handlers are created via constructor functions:

	subHandler := handlers.NewSubmissionHandler(db, cfg, judgeClient)
	lbHandler := handlers.NewLeaderboardHandler(db, cfg, cacheClient)

# Verification Flow

	POST /submissions/verify

parses the problem id (problemid package), fetches the handle's history
from the judge (judge package, with transport-only retries handled here),
filters to submissions for that problem created strictly after postedAt,
and records the survivors through the idempotent store. The store's
uniqueness constraint makes concurrent and repeated verifications
converge; a fetch that times out writes nothing and is safe to retry.

# Read Paths

	GET /submissions/verdict?problemId=&handle=
	GET /submissions/solved-by/{problemId}
	GET /submissions/by-handle/{handle}
	GET /leaderboard
	GET /leaderboard/weekly
	GET /leaderboard/rank/{handle}

Leaderboard reads go through an optional redis TTL cache; everything else
is computed per request.
*/
package handlers
