// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/logging"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations/{userID}
//
// Query parameters: limit, search_based (bool), query. Ranking never
// fails; store outages are absorbed by the fallback chain and reported in
// the response metadata.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RecommendationsRequest{
		UserID:      chi.URLParam(r, "userID"),
		Limit:       getIntParam(r, "limit", 0),
		Query:       strings.TrimSpace(r.URL.Query().Get("query")),
		SearchBased: getBoolParam(r, "search_based"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	resp := h.engine.Recommend(r.Context(), recommend.RecommendRequest{
		RequestID:   logging.RequestIDFromContext(r.Context()),
		UserID:      req.UserID,
		Limit:       req.Limit,
		Query:       req.Query,
		SearchBased: req.SearchBased,
	})

	respondSuccess(w, r, http.StatusOK, resp, start)
}

// Trending handles GET /api/v1/trending
//
// Query parameters: hours, limit, category, query.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	req := TrendingRequest{
		Hours:    getIntParam(r, "hours", 0),
		Limit:    getIntParam(r, "limit", 0),
		Category: strings.TrimSpace(q.Get("category")),
		Query:    strings.TrimSpace(q.Get("query")),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	var window time.Duration
	if req.Hours > 0 {
		window = time.Duration(req.Hours) * time.Hour
	}

	resp := h.engine.Trending(r.Context(), recommend.TrendingRequest{
		RequestID: logging.RequestIDFromContext(r.Context()),
		Window:    window,
		Limit:     req.Limit,
		Category:  req.Category,
		Query:     req.Query,
	})

	respondSuccess(w, r, http.StatusOK, resp, start)
}

// searchHistoryResponse is returned by UpdateSearchHistory.
type searchHistoryResponse struct {
	Profile  *recommend.SearchIntentProfile `json:"profile"`
	Insights []recommend.Insight           `json:"insights"`
}

// UpdateSearchHistory handles POST /api/v1/search-history
//
// The body carries a user id and raw browser history. The user's search
// profile is rebuilt from scratch and returned.
func (h *Handler) UpdateSearchHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchHistoryRequest
	if !decodeJSON(w, r, &req, maxHistoryBodyBytes) {
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	profile := h.engine.UpdateProfile(r.Context(), req.UserID, req.History)

	respondSuccess(w, r, http.StatusOK, searchHistoryResponse{
		Profile:  profile,
		Insights: recommend.Insights(profile, 5),
	}, start)
}

// Profile handles GET /api/v1/profiles/{userID}
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ProfileRequest{UserID: chi.URLParam(r, "userID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	profile, ok := h.engine.Profile(req.UserID)
	if !ok {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "No search profile for user "+req.UserID, nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, profile, start)
}

// ProfileInsights handles GET /api/v1/profiles/{userID}/insights
//
// Users without a profile get a single "no_profile" insight rather than
// a 404, so clients can render the hint directly.
func (h *Handler) ProfileInsights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ProfileRequest{
		UserID: chi.URLParam(r, "userID"),
		Limit:  getIntParam(r, "limit", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	respondSuccess(w, r, http.StatusOK, h.engine.ProfileInsights(req.UserID, req.Limit), start)
}

// SearchSuggestions handles GET /api/v1/search-suggestions
//
// Query parameters: q, limit. An empty q returns an empty list.
func (h *Handler) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := SuggestionsRequest{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: getIntParam(r, "limit", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	suggestions := []string{}
	if req.Query != "" {
		suggestions = h.engine.SearchSuggestions(req.Query, req.Limit)
	}

	respondSuccess(w, r, http.StatusOK, suggestions, start)
}

// Classify handles GET /api/v1/classify
//
// Returns the keyword, category and intent analysis of q.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ClassifyRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	respondSuccess(w, r, http.StatusOK, h.engine.Classify(req.Query), start)
}
