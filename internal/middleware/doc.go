// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package middleware provides HTTP middleware components for the API.

All middleware uses the standard func(http.Handler) http.Handler shape and is
mounted on the chi router in internal/api.

Key Components:

  - RequestID: UUID-based request tracking, bound to the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - PerformanceMonitor: ring buffer of recent requests with per-route
    latency percentiles, served by the status endpoint

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perf.Middleware)

Route patterns are only known after chi has matched the request, so the
metrics middleware reads the pattern once the handler returns.
*/
package middleware
