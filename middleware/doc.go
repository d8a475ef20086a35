// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: request/completion logging with a per-request id
  - JSONResponse / ErrorResponse: consistent JSON bodies; errors carry a
    machine-readable code
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support including preflight
*/
package middleware
