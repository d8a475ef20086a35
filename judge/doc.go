// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package judge is a thin client for the external judge's public read API.

The only operation is fetching the submission history for a (contest,
handle) pair:

	client := judge.NewClient(judge.DefaultBaseURL, 8*time.Second)
	subs, err := client.FetchSubmissions(ctx, 2119, "tourist")

# Error Semantics

Two failure classes are distinguished:

  - *APIError: the judge answered and rejected the request (unknown handle,
    bad contest). Terminal; callers must not retry.
  - everything else: transport failures, rate-limit pages, proxy errors.
    Transient; callers may retry with backoff.

The client itself never retries. The judge is treated as untrusted for
availability but trusted for the correctness of data it does return.
*/
package judge
