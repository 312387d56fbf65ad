// SPDX-License-Identifier: MIT

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ==============================================================================
// Prometheus Metrics
// ==============================================================================

// resultOK labels successful calculations in solveTotal.
const resultOK = "ok"

var (
	// solveTotal counts calculations by outcome ("ok" or the failure kind).
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvtour_solve_total",
		Help: "Total round-trip calculations by outcome",
	}, []string{"result"})

	// solveDuration tracks end-to-end calculation latency.
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvtour_solve_duration_seconds",
		Help:    "Round-trip calculation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	// solvePoints tracks the point count of accepted problems.
	solvePoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvtour_solve_points",
		Help:    "Number of points per round-trip calculation",
		Buckets: []float64{1, 2, 5, 10, 50, 100, 500, 1000, 2000},
	})
)
