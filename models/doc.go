// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request/response types and domain types for the
CP Gym API.

# Domain Types

  - SubmissionRecord: one row per judge submission id (the unit of truth)
  - SolverEntry: a handle's earliest accepted submission for a problem
  - LeaderboardEntry: a ranked row of the standings

# Error Codes

Error responses carry a machine-readable code alongside the HTTP status:

	{"error": "Bad Request", "code": "INVALID_PROBLEM_FORMAT", "message": "..."}

Clients should branch on the code, not the message.
*/
package models
