// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/middleware"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/models"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// HealthStatus is the body of the liveness and readiness endpoints.
type HealthStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime_seconds"`
	Reason  string  `json:"reason,omitempty"`
}

// StatusResponse is the body of GET /api/v1/status.
type StatusResponse struct {
	recommend.Status

	Version     string  `json:"version"`
	Environment string  `json:"environment"`
	GoVersion   string  `json:"go_version"`
	Uptime      float64 `json:"uptime_seconds"`
}

// HealthLive handles GET /api/v1/health/live
//
// The process is alive whenever it can answer.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.health("alive", ""), time.Time{})
}

// HealthReady handles GET /api/v1/health/ready
//
// Not ready while the store cannot report statistics, which includes an
// open circuit breaker. Ranking still answers from fallback tiers in that
// state, so this is for load balancer routing only.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Status(r.Context())
	if status.Error != "" {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   models.StatusError,
			Data:     h.health("degraded", status.Error),
			Metadata: metadata(r, time.Time{}),
			Error:    &models.APIError{Code: ErrCodeServiceUnavailable, Message: "Store unavailable"},
		})
		return
	}
	respondSuccess(w, r, http.StatusOK, h.health("ready", ""), time.Time{})
}

func (h *Handler) health(status, reason string) HealthStatus {
	return HealthStatus{
		Status:  status,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Reason:  reason,
	}
}

// Status handles GET /api/v1/status
//
// Reports store backend and counts, breaker state, profile count and
// engine counters. Store failures are reported inline, never as an HTTP
// error.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp := StatusResponse{
		Status:    h.engine.Status(r.Context()),
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Seconds(),
	}
	if h.config != nil {
		resp.Environment = h.config.Server.Environment
	}

	respondSuccess(w, r, http.StatusOK, resp, start)
}

// Performance handles GET /api/v1/status/performance
//
// Returns per-route latency percentiles over recent requests.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.Stats()
	}

	respondSuccess(w, r, http.StatusOK, stats, start)
}
