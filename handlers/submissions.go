// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/cp-gym/cliparse"
	"github.com/danielhkuo/cp-gym/judge"
	"github.com/danielhkuo/cp-gym/metrics"
	"github.com/danielhkuo/cp-gym/middleware"
	"github.com/danielhkuo/cp-gym/models"
	"github.com/danielhkuo/cp-gym/problemid"
	"github.com/danielhkuo/cp-gym/store"
)

const (
	fetchAttempts     = 3
	fetchBackoffStart = 500 * time.Millisecond
)

type SubmissionHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	judge *judge.Client
}

func NewSubmissionHandler(db *sql.DB, cfg cliparse.Config, judgeClient *judge.Client) *SubmissionHandler {
	return &SubmissionHandler{db: db, cfg: cfg, judge: judgeClient}
}

// Verify handles POST /submissions/verify
// Parses the problem id, fetches the handle's submission history from the
// judge, keeps submissions for the problem created after postedAt, and
// records new ones idempotently.
func (h *SubmissionHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.ProblemID == "" || req.Handle == "" || req.UserID == "" || req.PostedAt == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest,
			"Missing required fields: problemId, handle, userId, or postedAt")
		return
	}

	// Validate before touching the network: a malformed problem id must
	// never reach the judge.
	pid, err := problemid.Parse(req.ProblemID)
	if err != nil {
		metrics.VerifyRequests.WithLabelValues("invalid_input").Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidProblemFormat,
			`Invalid problemId format. Expected contestId + index (e.g. "2119B")`)
		return
	}

	postedAt, err := time.Parse(time.RFC3339, req.PostedAt)
	if err != nil {
		metrics.VerifyRequests.WithLabelValues("invalid_input").Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidTimestamp,
			"Invalid postedAt timestamp, expected RFC3339")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.JudgeTimeout)
	defer cancel()

	submissions, err := h.fetchWithRetry(ctx, pid.ContestID, req.Handle)
	if err != nil {
		metrics.VerifyRequests.WithLabelValues("judge_error").Inc()
		slog.Error("judge fetch failed", "contest", pid.ContestID, "handle", req.Handle, "error", err)

		var apiErr *judge.APIError
		if errors.As(err, &apiErr) {
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeExternalAPIError, apiErr.Comment)
			return
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeExternalAPIError,
			"Failed to fetch submissions from the judge")
		return
	}

	matching := filterSubmissions(submissions, pid.Index, postedAt)
	if len(matching) == 0 {
		metrics.VerifyRequests.WithLabelValues("no_match").Inc()
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNoMatchingSubmission,
			"No submissions found for the problem after postedAt")
		return
	}

	records := make([]models.SubmissionRecord, 0, len(matching))
	for _, sub := range matching {
		records = append(records, models.SubmissionRecord{
			SubmissionID:     formatSubmissionID(sub.ID),
			UserID:           req.UserID,
			CodeforcesHandle: req.Handle,
			ProblemID:        pid.String(),
			Verdict:          sub.Verdict,
			SolvedAt:         sub.CreatedAt(),
		})
	}

	result := store.RecordBatch(h.db, records)
	metrics.SubmissionsRecorded.WithLabelValues("inserted").Add(float64(result.Inserted))
	metrics.SubmissionsRecorded.WithLabelValues("skipped").Add(float64(result.Skipped))
	metrics.SubmissionsRecorded.WithLabelValues("failed").Add(float64(result.Failed))

	for _, recErr := range result.Errs {
		slog.Error("failed to record submission", "problem", pid.String(), "handle", req.Handle, "error", recErr)
	}

	// Unexpected storage failures (not duplicates) with nothing recorded
	// indicate a data or schema problem, not a transient condition.
	if result.Inserted == 0 && result.Skipped == 0 {
		metrics.VerifyRequests.WithLabelValues("storage_error").Inc()
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorageError,
			"Failed to save submissions")
		return
	}

	message := "No new submissions to save"
	if result.Inserted > 0 {
		message = "Submissions saved"
	}

	// Everything already recorded: signal the duplicate for observability,
	// but as a success body - a retried verification is not a failure.
	status := http.StatusCreated
	outcome := "saved"
	code := ""
	if result.Inserted == 0 {
		status = http.StatusConflict
		outcome = "duplicate"
		code = models.CodeDuplicateSubmission
	}
	metrics.VerifyRequests.WithLabelValues(outcome).Inc()

	slog.Info("verification completed",
		"problem", pid.String(),
		"handle", req.Handle,
		"matched", len(matching),
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	middleware.JSONResponse(w, status, models.VerifyResponse{
		Success:          true,
		Count:            result.Inserted,
		TotalSubmissions: len(matching),
		Message:          message,
		Code:             code,
		SavedSubmissions: result.Saved,
	})
}

// GetVerdict handles GET /submissions/verdict?problemId=&handle=
func (h *SubmissionHandler) GetVerdict(w http.ResponseWriter, r *http.Request) {
	problemID := r.URL.Query().Get("problemId")
	handle := r.URL.Query().Get("handle")

	if problemID == "" || handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest,
			"Missing required query parameters: problemId and handle")
		return
	}

	rec, err := store.Resolve(h.db, problemID, handle)
	if err != nil {
		slog.Error("failed to resolve verdict", "problem", problemID, "handle", handle, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorageError, "Database error")
		return
	}

	if rec == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "No accepted submission found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerdictResponse{
		ProblemID:        rec.ProblemID,
		CodeforcesHandle: rec.CodeforcesHandle,
		Verdict:          rec.Verdict,
		SolvedAt:         rec.SolvedAt,
		SubmissionID:     rec.SubmissionID,
	})
}

// GetSolvedBy handles GET /submissions/solved-by/{problemId}
// One entry per distinct handle, earliest accepted solve only.
func (h *SubmissionHandler) GetSolvedBy(w http.ResponseWriter, r *http.Request) {
	problemID := r.PathValue("problemId")
	if problemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "problemId is required")
		return
	}

	entries, err := store.SolvedBy(h.db, problemID)
	if err != nil {
		slog.Error("failed to query solvers", "problem", problemID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorageError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SolvedByResponse{
		Success:     true,
		Submissions: entries,
	})
}

// GetByHandle handles GET /submissions/by-handle/{handle}
func (h *SubmissionHandler) GetByHandle(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "handle is required")
		return
	}

	records, err := store.ByHandle(h.db, handle)
	if err != nil {
		slog.Error("failed to query submissions", "handle", handle, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorageError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ByHandleResponse{
		Success:     true,
		Submissions: records,
	})
}

// fetchWithRetry applies the retry policy around the judge client:
// transient transport failures are retried with doubling backoff, while
// judge-reported errors (unknown handle, bad contest) abort immediately.
func (h *SubmissionHandler) fetchWithRetry(ctx context.Context, contestID int, handle string) ([]judge.RawSubmission, error) {
	backoff := fetchBackoffStart

	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		start := time.Now()
		subs, err := h.judge.FetchSubmissions(ctx, contestID, handle)
		metrics.JudgeLatency.Observe(time.Since(start).Seconds())

		if err == nil {
			metrics.JudgeRequests.WithLabelValues("ok").Inc()
			return subs, nil
		}
		lastErr = err

		var apiErr *judge.APIError
		if errors.As(err, &apiErr) {
			metrics.JudgeRequests.WithLabelValues("rejected").Inc()
			return nil, err
		}
		metrics.JudgeRequests.WithLabelValues("transport_error").Inc()

		if attempt == fetchAttempts {
			break
		}

		slog.Warn("judge fetch failed, retrying",
			"contest", contestID, "handle", handle, "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, lastErr
}
