// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema is a single append-only table:

  - submission: one row per judge submission id

submission_id is the primary key. That uniqueness constraint - not
application logic - is what makes recording idempotent under concurrent
verification requests.

# Portability

The engine runs on postgres (lib/pq) in production and sqlite
(modernc.org/sqlite) for local development and tests. The schema and all
queries stick to the SQL subset both accept: $N placeholders,
CURRENT_TIMESTAMP, ON CONFLICT ... DO NOTHING.
*/
package db
