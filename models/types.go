package models

import "time"

// Verdict constants. The judge reports many verdict strings (WRONG_ANSWER,
// TIME_LIMIT_EXCEEDED, ...); only OK counts as accepted.
const (
	VerdictAccepted = "OK"
)

// Machine-readable error codes returned alongside HTTP error statuses.
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidProblemFormat = "INVALID_PROBLEM_FORMAT"
	CodeInvalidTimestamp     = "INVALID_TIMESTAMP"
	CodeExternalAPIError     = "EXTERNAL_API_ERROR"
	CodeNoMatchingSubmission = "NO_MATCHING_SUBMISSION"
	CodeDuplicateSubmission  = "DUPLICATE_SUBMISSION"
	CodeStorageError         = "STORAGE_ERROR"
	CodeNotFound             = "NOT_FOUND"
)

// Request types

type VerifyRequest struct {
	ProblemID string `json:"problemId"`
	Handle    string `json:"handle"`
	UserID    string `json:"userId"`
	PostedAt  string `json:"postedAt"` // ISO8601 / RFC3339
}

// Response types

type VerifyResponse struct {
	Success          bool               `json:"success"`
	Count            int                `json:"count"`
	TotalSubmissions int                `json:"totalSubmissions"`
	Message          string             `json:"message"`
	Code             string             `json:"code,omitempty"`
	SavedSubmissions []SubmissionRecord `json:"savedSubmissions"`
}

type VerdictResponse struct {
	ProblemID        string    `json:"problemId"`
	CodeforcesHandle string    `json:"codeforcesHandle"`
	Verdict          string    `json:"verdict"`
	SolvedAt         time.Time `json:"solvedAt"`
	SubmissionID     string    `json:"submissionId"`
}

type SolvedByResponse struct {
	Success     bool          `json:"success"`
	Submissions []SolverEntry `json:"submissions"`
}

type ByHandleResponse struct {
	Success     bool               `json:"success"`
	Submissions []SubmissionRecord `json:"submissions"`
}

type LeaderboardResponse struct {
	Success bool               `json:"success"`
	Data    []LeaderboardEntry `json:"data"`
}

type RankResponse struct {
	Success          bool   `json:"success"`
	Rank             int    `json:"rank"`
	CodeforcesHandle string `json:"codeforcesHandle"`
	SolvedCount      int    `json:"solvedCount"`
}

// Domain types

// SubmissionRecord is the unit of truth: one row per judge submission id,
// append-only, never updated.
type SubmissionRecord struct {
	SubmissionID     string    `json:"submissionId"`
	UserID           string    `json:"userId"`
	CodeforcesHandle string    `json:"codeforcesHandle"`
	ProblemID        string    `json:"problemId"`
	Verdict          string    `json:"verdict"`
	SolvedAt         time.Time `json:"solvedAt"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SolverEntry is one handle's earliest accepted submission for a problem.
type SolverEntry struct {
	CodeforcesHandle string    `json:"codeforcesHandle"`
	SolvedAt         time.Time `json:"solvedAt"`
	SubmissionID     string    `json:"submissionId"`
}

type LeaderboardEntry struct {
	Rank             int       `json:"rank"`
	CodeforcesHandle string    `json:"codeforcesHandle"`
	SolvedCount      int       `json:"solvedCount"`
	FirstSolvedAt    time.Time `json:"firstSolvedAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
