// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level collectors registered once against the default registry,
// so handlers constructed repeatedly in tests never double-register.
var (
	VerifyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cpgym_verify_requests_total",
		Help: "Total verification requests by outcome",
	}, []string{"outcome"})

	JudgeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cpgym_judge_requests_total",
		Help: "Total judge API fetches by result",
	}, []string{"result"})

	JudgeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cpgym_judge_latency_seconds",
		Help:    "Judge API fetch latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	SubmissionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cpgym_submissions_recorded_total",
		Help: "Submission store writes by result",
	}, []string{"result"})

	LeaderboardCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cpgym_leaderboard_cache_total",
		Help: "Leaderboard cache lookups by result",
	}, []string{"result"})
)
