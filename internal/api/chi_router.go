// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/config"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/middleware"
)

// defaultRequestTimeout bounds handler execution when no timeout is configured.
const defaultRequestTimeout = 30 * time.Second

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
	timeout       time.Duration
}

// NewRouter creates a router for handler. CORS and rate limits come from
// cfg.Security; cfg may be nil in tests.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	timeout := defaultRequestTimeout
	if cfg != nil {
		mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
		mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
		mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
		mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
		if cfg.Server.Timeout > 0 {
			timeout = cfg.Server.Timeout
		}
	}

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		perfMon:       handler.perfMon,
		timeout:       timeout,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogging())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)
	if router.perfMon != nil {
		r.Use(router.perfMon.Middleware)
	}
	r.Use(chimiddleware.Timeout(router.timeout))
	r.Use(chimiddleware.Compress(5, "application/json"))

	h := router.handler

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom("health", RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// Reads: ranking, profiles, classification
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit("read"))

			r.Get("/status", h.Status)
			r.Get("/status/performance", h.Performance)
			r.Get("/recommendations/{userID}", h.Recommendations)
			r.Get("/trending", h.Trending)
			r.Get("/profiles/{userID}", h.Profile)
			r.Get("/profiles/{userID}/insights", h.ProfileInsights)
			r.Get("/search-suggestions", h.SearchSuggestions)
			r.Get("/classify", h.Classify)
		})

		// Writes: ingestion and search history
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom("write", RateLimitWrite))

			r.Post("/users", h.CreateUser)
			r.Post("/items", h.CreateItem)
			r.Post("/interactions", h.CreateInteraction)
			r.Post("/search-history", h.UpdateSearchHistory)
		})

		r.With(router.chiMiddleware.RateLimitCustom("admin", RateLimitAdmin)).
			Post("/sample-data", h.LoadSampleData)
	})

	// ========================
	// Prometheus Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}
