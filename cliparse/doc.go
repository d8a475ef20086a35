// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables. Flags win over env vars; required settings without
either produce an error.

Settings:

  - PORT (-p): server port (default 3319)
  - DATABASE_URL (-d): database connection string (required)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - JUDGE_API_URL (-judge-url): judge API base (default Codeforces)
  - JUDGE_TIMEOUT_SECONDS (-judge-timeout): judge fetch bound (default 8)
  - REDIS_URL (-redis-url): optional leaderboard cache
  - LEADERBOARD_TTL_SECONDS (-leaderboard-ttl): cache TTL (default 20)
*/
package cliparse
