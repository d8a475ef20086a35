// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is written to run unchanged on both postgres and sqlite:
// $N placeholders, CURRENT_TIMESTAMP defaults, no serial columns.
const schema = `
-- Submission records: one row per judge submission id, append-only.
-- The primary key on submission_id is the engine's core correctness
-- guarantee; concurrent writers serialize on it.
CREATE TABLE IF NOT EXISTS submission (
    submission_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    codeforces_handle TEXT NOT NULL,
    problem_id TEXT NOT NULL,
    verdict TEXT NOT NULL,
    solved_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submission_problem_handle ON submission(problem_id, codeforces_handle);
CREATE INDEX IF NOT EXISTS idx_submission_handle ON submission(codeforces_handle);
CREATE INDEX IF NOT EXISTS idx_submission_verdict ON submission(verdict);
`
