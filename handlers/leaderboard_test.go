// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/cp-gym/models"
	"github.com/danielhkuo/cp-gym/testutil"
)

func TestGetLeaderboard(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// alice and bob each solve 3 distinct problems; alice's earliest solve
	// predates bob's, so she ranks above him. carol has 1 solve.
	jan := func(day, hour int) time.Time {
		return time.Date(2025, 1, day, hour, 0, 0, 0, time.UTC)
	}

	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("10", "alice", "2119A", jan(1, 0)))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("11", "alice", "2119B", jan(2, 0)))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("12", "alice", "2119C", jan(3, 0)))

	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("20", "bob", "2119A", jan(1, 12)))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("21", "bob", "2119B", jan(2, 0)))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("22", "bob", "2119C", jan(3, 0)))

	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("30", "carol", "2119A", jan(1, 0)))

	handler := NewLeaderboardHandler(conn, testutil.GetTestConfig(), nil)

	req := httptest.NewRequest("GET", "/leaderboard", nil)
	w := httptest.NewRecorder()

	handler.GetLeaderboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Success {
		t.Error("Expected success=true")
	}
	if len(resp.Data) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(resp.Data))
	}

	expected := []struct {
		handle string
		rank   int
		count  int
	}{
		{"alice", 1, 3},
		{"bob", 2, 3},
		{"carol", 3, 1},
	}
	for i, want := range expected {
		got := resp.Data[i]
		if got.CodeforcesHandle != want.handle || got.Rank != want.rank || got.SolvedCount != want.count {
			t.Errorf("Position %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestGetLeaderboardEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewLeaderboardHandler(conn, testutil.GetTestConfig(), nil)

	req := httptest.NewRequest("GET", "/leaderboard", nil)
	w := httptest.NewRecorder()

	handler.GetLeaderboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Data) != 0 {
		t.Errorf("Expected empty leaderboard, got %d entries", len(resp.Data))
	}
}

func TestGetWeekly(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	now := time.Now().UTC()
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("1", "alice", "2119A", now.Add(-48*time.Hour)))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("2", "bob", "2119A", now.Add(-30*24*time.Hour)))

	handler := NewLeaderboardHandler(conn, testutil.GetTestConfig(), nil)

	req := httptest.NewRequest("GET", "/leaderboard/weekly", nil)
	w := httptest.NewRecorder()

	handler.GetWeekly(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 entry inside the weekly window, got %d", len(resp.Data))
	}
	if resp.Data[0].CodeforcesHandle != "alice" {
		t.Errorf("Expected alice, got %s", resp.Data[0].CodeforcesHandle)
	}
}

func TestGetRank(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("1", "alice", "2119A", base))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("2", "alice", "2119B", base.Add(time.Hour)))
	testutil.InsertTestSubmission(t, conn, testutil.AcceptedSubmission("3", "bob", "2119A", base.Add(2*time.Hour)))

	handler := NewLeaderboardHandler(conn, testutil.GetTestConfig(), nil)

	tests := []struct {
		name           string
		handle         string
		expectedStatus int
		expectedRank   int
	}{
		{"ranked handle", "bob", http.StatusOK, 2},
		{"unranked handle", "tourist", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/leaderboard/rank/"+tt.handle, nil)
			req.SetPathValue("handle", tt.handle)
			w := httptest.NewRecorder()

			handler.GetRank(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.RankResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Rank != tt.expectedRank {
					t.Errorf("Expected rank %d, got %d", tt.expectedRank, resp.Rank)
				}
				if resp.CodeforcesHandle != tt.handle {
					t.Errorf("Expected handle %s, got %s", tt.handle, resp.CodeforcesHandle)
				}
			}
		})
	}
}
