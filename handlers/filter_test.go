// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"
	"time"

	"github.com/danielhkuo/cp-gym/judge"
	"github.com/danielhkuo/cp-gym/testutil"
)

func TestFilterSubmissions(t *testing.T) {
	postedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	before := testutil.RawSubmission(1, "B", "OK", postedAt.Add(-time.Hour))
	exactly := testutil.RawSubmission(2, "B", "OK", postedAt)
	after := testutil.RawSubmission(3, "B", "OK", postedAt.Add(time.Hour))
	afterRejected := testutil.RawSubmission(4, "B", "WRONG_ANSWER", postedAt.Add(2*time.Hour))
	otherProblem := testutil.RawSubmission(5, "A", "OK", postedAt.Add(time.Hour))

	tests := []struct {
		name    string
		subs    []judge.RawSubmission
		index   string
		wantIDs []int64
	}{
		{
			name:    "strictly after postedAt",
			subs:    []judge.RawSubmission{before, exactly, after},
			index:   "B",
			wantIDs: []int64{3},
		},
		{
			name:    "other problem index excluded",
			subs:    []judge.RawSubmission{after, otherProblem},
			index:   "B",
			wantIDs: []int64{3},
		},
		{
			name:    "verdict does not matter at filter stage",
			subs:    []judge.RawSubmission{after, afterRejected},
			index:   "B",
			wantIDs: []int64{3, 4},
		},
		{
			name:    "index match is case-insensitive",
			subs:    []judge.RawSubmission{after},
			index:   "b",
			wantIDs: []int64{3},
		},
		{
			name:    "nothing matches",
			subs:    []judge.RawSubmission{before, otherProblem},
			index:   "B",
			wantIDs: []int64{},
		},
		{
			name:    "empty input",
			subs:    nil,
			index:   "B",
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterSubmissions(tt.subs, tt.index, postedAt)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Expected %d submissions, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Position %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}
