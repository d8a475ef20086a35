// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/cp-gym/cliparse"
	"github.com/danielhkuo/cp-gym/db"
	"github.com/danielhkuo/cp-gym/judge"
	"github.com/danielhkuo/cp-gym/models"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp directory
// with the full schema. WAL mode plus a busy timeout lets the concurrency
// tests hammer the same file without spurious SQLITE_BUSY failures.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "cpgym.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3319,
		DatabaseURL:    "file:cpgym-test.db",
		DatabaseType:   "sqlite",
		JudgeBaseURL:   judge.DefaultBaseURL,
		JudgeTimeout:   5 * time.Second,
		LeaderboardTTL: 20 * time.Second,
	}
}

// InsertTestSubmission stores a submission record directly, bypassing the
// verification flow.
func InsertTestSubmission(t *testing.T, conn *sql.DB, rec models.SubmissionRecord) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO submission (submission_id, user_id, codeforces_handle, problem_id, verdict, solved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.SubmissionID, rec.UserID, rec.CodeforcesHandle, rec.ProblemID, rec.Verdict, rec.SolvedAt.UTC())
	if err != nil {
		t.Fatalf("Failed to insert test submission: %v", err)
	}
}

// AcceptedSubmission builds an accepted record with sensible defaults.
func AcceptedSubmission(submissionID, handle, problemID string, solvedAt time.Time) models.SubmissionRecord {
	return models.SubmissionRecord{
		SubmissionID:     submissionID,
		UserID:           "user-" + handle,
		CodeforcesHandle: handle,
		ProblemID:        problemID,
		Verdict:          models.VerdictAccepted,
		SolvedAt:         solvedAt.UTC(),
	}
}

// NewJudgeServer starts a fake judge that serves canned submission
// histories per handle. Unknown handles get the judge's FAILED envelope,
// mirroring the real API's behavior.
func NewJudgeServer(t *testing.T, byHandle map[string][]judge.RawSubmission) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle := r.URL.Query().Get("handle")
		w.Header().Set("Content-Type", "application/json")

		subs, ok := byHandle[handle]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "FAILED",
				"comment": "handle: User with handle " + handle + " not found",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"result": subs,
		})
	}))

	t.Cleanup(server.Close)
	return server
}

// RawSubmission builds a judge history entry.
func RawSubmission(id int64, index, verdict string, createdAt time.Time) judge.RawSubmission {
	var sub judge.RawSubmission
	sub.ID = id
	sub.CreationTimeSeconds = createdAt.Unix()
	sub.Verdict = verdict
	sub.Problem.Index = index
	return sub
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
