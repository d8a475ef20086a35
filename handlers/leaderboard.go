// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/cp-gym/cache"
	"github.com/danielhkuo/cp-gym/cliparse"
	"github.com/danielhkuo/cp-gym/metrics"
	"github.com/danielhkuo/cp-gym/middleware"
	"github.com/danielhkuo/cp-gym/models"
	"github.com/danielhkuo/cp-gym/store"
)

const weeklyWindow = 7 * 24 * time.Hour

type LeaderboardHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	cache *cache.Client
}

// NewLeaderboardHandler creates the handler. cacheClient may be nil, in
// which case every read recomputes the standings.
func NewLeaderboardHandler(db *sql.DB, cfg cliparse.Config, cacheClient *cache.Client) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, cfg: cfg, cache: cacheClient}
}

// GetLeaderboard handles GET /leaderboard
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.serveRanking(w, r, "leaderboard:all", func() ([]models.LeaderboardEntry, error) {
		return store.Rank(h.db)
	})
}

// GetWeekly handles GET /leaderboard/weekly
// Same ranking, restricted to solves in the last 7 days.
func (h *LeaderboardHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	h.serveRanking(w, r, "leaderboard:weekly", func() ([]models.LeaderboardEntry, error) {
		return store.RankSince(h.db, time.Now().UTC().Add(-weeklyWindow))
	})
}

// GetRank handles GET /leaderboard/rank/{handle}
func (h *LeaderboardHandler) GetRank(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "handle is required")
		return
	}

	entries, err := store.Rank(h.db)
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorageError, "Database error")
		return
	}

	for _, entry := range entries {
		if entry.CodeforcesHandle == handle {
			middleware.JSONResponse(w, http.StatusOK, models.RankResponse{
				Success:          true,
				Rank:             entry.Rank,
				CodeforcesHandle: entry.CodeforcesHandle,
				SolvedCount:      entry.SolvedCount,
			})
			return
		}
	}

	middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Handle has no accepted submissions")
}

// serveRanking computes (or serves a cached copy of) a ranking and writes
// it. The cache trades a short staleness window for avoiding recomputation
// under polling clients.
func (h *LeaderboardHandler) serveRanking(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() ([]models.LeaderboardEntry, error)) {
	if payload, hit := h.cache.Get(r.Context(), cacheKey); hit {
		metrics.LeaderboardCache.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(payload))
		return
	}
	metrics.LeaderboardCache.WithLabelValues("miss").Inc()

	entries, err := compute()
	if err != nil {
		slog.Error("failed to compute leaderboard", "key", cacheKey, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorageError, "Database error")
		return
	}

	response := models.LeaderboardResponse{
		Success: true,
		Data:    entries,
	}

	if payload, err := json.Marshal(response); err == nil {
		h.cache.Set(r.Context(), cacheKey, string(payload))
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}
