// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Codeforces API root.
const DefaultBaseURL = "https://codeforces.com/api"

// RawSubmission is a single entry from the judge's submission history.
type RawSubmission struct {
	ID                  int64  `json:"id"`
	CreationTimeSeconds int64  `json:"creationTimeSeconds"`
	Verdict             string `json:"verdict"`
	Problem             struct {
		ContestID int    `json:"contestId"`
		Index     string `json:"index"`
	} `json:"problem"`
}

// CreatedAt converts the judge's epoch-seconds creation time to absolute time.
func (s RawSubmission) CreatedAt() time.Time {
	return time.Unix(s.CreationTimeSeconds, 0).UTC()
}

// APIError is a judge-reported failure (e.g. unknown handle). These are
// terminal: the judge evaluated the request and rejected it, so callers
// must not retry.
type APIError struct {
	Comment string
}

func (e *APIError) Error() string {
	return "judge API error: " + e.Comment
}

// envelope is the wrapper the judge puts around every response.
type envelope struct {
	Status  string          `json:"status"` // "OK" or "FAILED"
	Comment string          `json:"comment"`
	Result  []RawSubmission `json:"result"`
}

// Client queries the judge's public read API. It holds no state beyond the
// HTTP client and performs no retries; retry policy lives in the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a judge client. baseURL is overridable for tests;
// pass DefaultBaseURL in production.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchSubmissions returns the full submission history for a handle in a
// contest, most recent first (the judge's native order). A FAILED envelope
// is surfaced as *APIError with the judge's comment attached; transport
// failures and unexpected statuses are returned as plain errors and are
// safe to retry.
func (c *Client) FetchSubmissions(ctx context.Context, contestID int, handle string) ([]RawSubmission, error) {
	q := url.Values{}
	q.Set("contestId", strconv.Itoa(contestID))
	q.Set("handle", handle)

	reqURL := c.baseURL + "/contest.status?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build judge request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Rate-limit pages and proxy errors are not JSON
		return nil, fmt.Errorf("judge returned unparseable response (status %d): %w", resp.StatusCode, err)
	}

	if env.Status != "OK" {
		if env.Comment != "" {
			return nil, &APIError{Comment: env.Comment}
		}
		return nil, fmt.Errorf("judge returned status %d", resp.StatusCode)
	}

	return env.Result, nil
}
