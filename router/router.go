// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/cp-gym/cache"
	"github.com/danielhkuo/cp-gym/cliparse"
	"github.com/danielhkuo/cp-gym/handlers"
	"github.com/danielhkuo/cp-gym/judge"
	"github.com/danielhkuo/cp-gym/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, judgeClient *judge.Client, cacheClient *cache.Client) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	subHandler := handlers.NewSubmissionHandler(db, cfg, judgeClient)
	lbHandler := handlers.NewLeaderboardHandler(db, cfg, cacheClient)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Verification flow
	mux.HandleFunc("POST /submissions/verify", middleware.WithLogging(subHandler.Verify))

	// Submission read paths
	mux.HandleFunc("GET /submissions/verdict", middleware.WithLogging(subHandler.GetVerdict))
	mux.HandleFunc("GET /submissions/solved-by/{problemId}", middleware.WithLogging(subHandler.GetSolvedBy))
	mux.HandleFunc("GET /submissions/by-handle/{handle}", middleware.WithLogging(subHandler.GetByHandle))

	// Standings
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(lbHandler.GetLeaderboard))
	mux.HandleFunc("GET /leaderboard/weekly", middleware.WithLogging(lbHandler.GetWeekly))
	mux.HandleFunc("GET /leaderboard/rank/{handle}", middleware.WithLogging(lbHandler.GetRank))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cp-gym API v1"))
	})

	return mux
}
