// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/danielhkuo/cp-gym/models"
)

// RecordIfNew inserts a submission record unless one with the same judge
// submission id already exists. The insert-if-absent is a single atomic
// statement (ON CONFLICT DO NOTHING), so concurrent callers racing on the
// same submission id converge: one observes inserted=true, the rest get
// inserted=false with the stored record.
func RecordIfNew(db *sql.DB, rec models.SubmissionRecord) (bool, models.SubmissionRecord, error) {
	res, err := db.Exec(`
		INSERT INTO submission (submission_id, user_id, codeforces_handle, problem_id, verdict, solved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (submission_id) DO NOTHING
	`, rec.SubmissionID, rec.UserID, rec.CodeforcesHandle, rec.ProblemID, rec.Verdict, rec.SolvedAt.UTC())
	if err != nil {
		return false, models.SubmissionRecord{}, fmt.Errorf("failed to insert submission %s: %w", rec.SubmissionID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, models.SubmissionRecord{}, fmt.Errorf("failed to read insert result: %w", err)
	}

	stored, err := GetBySubmissionID(db, rec.SubmissionID)
	if err != nil {
		return false, models.SubmissionRecord{}, err
	}
	if stored == nil {
		return false, models.SubmissionRecord{}, fmt.Errorf("submission %s missing after insert", rec.SubmissionID)
	}

	return affected > 0, *stored, nil
}

// BatchResult reports partial-success counts for a bulk record operation.
type BatchResult struct {
	Inserted int
	Skipped  int
	Failed   int
	Saved    []models.SubmissionRecord
	Errs     []error
}

// RecordBatch records each candidate independently; a failure on one does
// not block the others. Saved contains only newly inserted records.
func RecordBatch(db *sql.DB, recs []models.SubmissionRecord) BatchResult {
	result := BatchResult{Saved: []models.SubmissionRecord{}}

	for _, rec := range recs {
		inserted, stored, err := RecordIfNew(db, rec)
		if err != nil {
			result.Failed++
			result.Errs = append(result.Errs, err)
			continue
		}
		if inserted {
			result.Inserted++
			result.Saved = append(result.Saved, stored)
		} else {
			result.Skipped++
		}
	}

	return result
}

// GetBySubmissionID fetches a single record by judge submission id.
// Returns (nil, nil) when no record exists.
func GetBySubmissionID(db *sql.DB, submissionID string) (*models.SubmissionRecord, error) {
	var rec models.SubmissionRecord
	err := db.QueryRow(`
		SELECT submission_id, user_id, codeforces_handle, problem_id, verdict, solved_at, created_at
		FROM submission
		WHERE submission_id = $1
	`, submissionID).Scan(
		&rec.SubmissionID, &rec.UserID, &rec.CodeforcesHandle,
		&rec.ProblemID, &rec.Verdict, &rec.SolvedAt, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query submission %s: %w", submissionID, err)
	}

	return &rec, nil
}

// Resolve answers "has handle H an accepted submission for problem P".
// The first accepted submission is authoritative and final; later accepted
// submissions for the same pair are irrelevant. Returns (nil, nil) when
// the pair is unsolved - absence is not an error.
func Resolve(db *sql.DB, problemID, handle string) (*models.SubmissionRecord, error) {
	rows, err := db.Query(`
		SELECT submission_id, user_id, codeforces_handle, problem_id, verdict, solved_at, created_at
		FROM submission
		WHERE problem_id = $1 AND codeforces_handle = $2 AND verdict = $3
	`, problemID, handle, models.VerdictAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to query verdict: %w", err)
	}
	defer rows.Close()

	var earliest *models.SubmissionRecord
	for rows.Next() {
		var rec models.SubmissionRecord
		if err := rows.Scan(
			&rec.SubmissionID, &rec.UserID, &rec.CodeforcesHandle,
			&rec.ProblemID, &rec.Verdict, &rec.SolvedAt, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if earliest == nil || rec.SolvedAt.Before(earliest.SolvedAt) {
			r := rec
			earliest = &r
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	return earliest, nil
}

// SolvedBy returns one entry per distinct handle with an accepted
// submission for the problem, keeping each handle's earliest solve,
// ordered by solve time ascending (first-to-solve first).
func SolvedBy(db *sql.DB, problemID string) ([]models.SolverEntry, error) {
	rows, err := db.Query(`
		SELECT codeforces_handle, solved_at, submission_id
		FROM submission
		WHERE problem_id = $1 AND verdict = $2
	`, problemID, models.VerdictAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to query solvers: %w", err)
	}
	defer rows.Close()

	earliest := make(map[string]models.SolverEntry)
	for rows.Next() {
		var entry models.SolverEntry
		if err := rows.Scan(&entry.CodeforcesHandle, &entry.SolvedAt, &entry.SubmissionID); err != nil {
			return nil, fmt.Errorf("failed to scan solver: %w", err)
		}
		prev, seen := earliest[entry.CodeforcesHandle]
		if !seen || entry.SolvedAt.Before(prev.SolvedAt) {
			earliest[entry.CodeforcesHandle] = entry
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solvers: %w", err)
	}

	entries := make([]models.SolverEntry, 0, len(earliest))
	for _, entry := range earliest {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].SolvedAt.Equal(entries[j].SolvedAt) {
			return entries[i].SolvedAt.Before(entries[j].SolvedAt)
		}
		return entries[i].CodeforcesHandle < entries[j].CodeforcesHandle
	})

	return entries, nil
}

// ByHandle returns every stored record for a handle, newest solve first.
func ByHandle(db *sql.DB, handle string) ([]models.SubmissionRecord, error) {
	rows, err := db.Query(`
		SELECT submission_id, user_id, codeforces_handle, problem_id, verdict, solved_at, created_at
		FROM submission
		WHERE codeforces_handle = $1
	`, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions for handle: %w", err)
	}
	defer rows.Close()

	records := []models.SubmissionRecord{}
	for rows.Next() {
		var rec models.SubmissionRecord
		if err := rows.Scan(
			&rec.SubmissionID, &rec.UserID, &rec.CodeforcesHandle,
			&rec.ProblemID, &rec.Verdict, &rec.SolvedAt, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].SolvedAt.Equal(records[j].SolvedAt) {
			return records[i].SolvedAt.After(records[j].SolvedAt)
		}
		return records[i].SubmissionID < records[j].SubmissionID
	})

	return records, nil
}

// Rank computes the all-time standings: for every handle with at least one
// accepted record, the count of distinct problems solved. Ordering is
// solvedCount descending, then earliest overall accepted solve ascending,
// then handle, with sequential 1-based ranks. Deterministic for a fixed
// record set.
func Rank(db *sql.DB) ([]models.LeaderboardEntry, error) {
	return RankSince(db, time.Time{})
}

// RankSince is Rank restricted to accepted solves at or after the given
// time. A zero time means no restriction.
func RankSince(db *sql.DB, since time.Time) ([]models.LeaderboardEntry, error) {
	rows, err := db.Query(`
		SELECT codeforces_handle, problem_id, solved_at
		FROM submission
		WHERE verdict = $1
	`, models.VerdictAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to query accepted submissions: %w", err)
	}
	defer rows.Close()

	type handleStats struct {
		problems    map[string]bool
		firstSolved time.Time
	}
	stats := make(map[string]*handleStats)

	for rows.Next() {
		var handle, problemID string
		var solvedAt time.Time
		if err := rows.Scan(&handle, &problemID, &solvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan accepted submission: %w", err)
		}
		if !since.IsZero() && solvedAt.Before(since) {
			continue
		}

		s, ok := stats[handle]
		if !ok {
			s = &handleStats{problems: make(map[string]bool), firstSolved: solvedAt}
			stats[handle] = s
		}
		s.problems[problemID] = true
		if solvedAt.Before(s.firstSolved) {
			s.firstSolved = solvedAt
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accepted submissions: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(stats))
	for handle, s := range stats {
		entries = append(entries, models.LeaderboardEntry{
			CodeforcesHandle: handle,
			SolvedCount:      len(s.problems),
			FirstSolvedAt:    s.firstSolved,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SolvedCount != entries[j].SolvedCount {
			return entries[i].SolvedCount > entries[j].SolvedCount
		}
		if !entries[i].FirstSolvedAt.Equal(entries[j].FirstSolvedAt) {
			return entries[i].FirstSolvedAt.Before(entries[j].FirstSolvedAt)
		}
		return entries[i].CodeforcesHandle < entries[j].CodeforcesHandle
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
