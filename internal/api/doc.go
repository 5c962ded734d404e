// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package api provides the HTTP transport of the recommendation service.

Routing uses chi with production middleware from the chi ecosystem:

  - middleware.RequestID: X-Request-ID propagation into the logging context
  - chimiddleware.RealIP, Recoverer, Timeout and Compress
  - go-chi/cors: CORS, global so OPTIONS preflight works on every route
  - go-chi/httprate: per-IP rate limits per route group (health, read,
    write, admin) with JSON 429 responses
  - middleware.PrometheusMetrics: request metrics labelled by route pattern

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/status
	GET  /api/v1/status/performance
	GET  /api/v1/recommendations/{userID}?limit&search_based&query
	GET  /api/v1/trending?hours&limit&category&query
	GET  /api/v1/profiles/{userID}
	GET  /api/v1/profiles/{userID}/insights?limit
	GET  /api/v1/search-suggestions?q&limit
	GET  /api/v1/classify?q
	POST /api/v1/users
	POST /api/v1/items
	POST /api/v1/interactions
	POST /api/v1/search-history
	POST /api/v1/sample-data
	GET  /metrics

Every JSON response uses the models.APIResponse envelope. Ranking
endpoints always answer 200 with a non-empty list; the metadata names the
tier that produced the items and the tiers that were skipped. Ingestion
endpoints map validation failures to 400 and store outages (including an
open circuit breaker) to 503.

Request validation uses go-playground/validator through the validation
package; request structs live in requests.go.
*/
package api
