// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/cp-gym/judge"
)

// filterSubmissions keeps submissions for the given problem index created
// strictly after postedAt. Anything at or before postedAt predates the
// problem's publication here and must not earn credit. An empty result is
// a normal outcome, not an error.
func filterSubmissions(subs []judge.RawSubmission, index string, postedAt time.Time) []judge.RawSubmission {
	matching := make([]judge.RawSubmission, 0)
	for _, sub := range subs {
		if !strings.EqualFold(sub.Problem.Index, index) {
			continue
		}
		if !sub.CreatedAt().After(postedAt) {
			continue
		}
		matching = append(matching, sub)
	}
	return matching
}

// formatSubmissionID renders the judge's numeric submission id as the
// string key used in the store.
func formatSubmissionID(id int64) string {
	return strconv.FormatInt(id, 10)
}
