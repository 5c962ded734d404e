// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"time"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/config"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/middleware"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing, body decoding, parameter parsing
//   - handlers_health.go: liveness, readiness, status and performance
//   - handlers_recommend.go: recommendations, trending, profiles, classification
//   - handlers_ingest.go: users, items, interactions and sample data
type Handler struct {
	engine    *recommend.Engine
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
	version   string
}

// NewHandler creates a new API handler.
//
// perfMon may be nil, in which case the performance endpoint reports no
// samples.
//
// Example:
//
//	handler := api.NewHandler(engine, cfg, perfMon, version)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
func NewHandler(engine *recommend.Engine, cfg *config.Config, perfMon *middleware.PerformanceMonitor, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		engine:    engine,
		config:    cfg,
		perfMon:   perfMon,
		startTime: time.Now(),
		version:   version,
	}
}
