// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/logging"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// CreateUser handles POST /api/v1/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateUserRequest
	if !decodeJSON(w, r, &req, maxBodyBytes) {
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	if err := h.engine.AddUser(r.Context(), recommend.User{UserID: req.UserID, Preferences: req.Preferences}); err != nil {
		respondEngineError(w, r, "Failed to store user", err)
		return
	}

	respondSuccess(w, r, http.StatusCreated, map[string]string{"user_id": req.UserID}, start)
}

// CreateItem handles POST /api/v1/items
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateItemRequest
	if !decodeJSON(w, r, &req, maxBodyBytes) {
		return
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	item := recommend.Item{
		ItemID:      req.ItemID,
		Title:       req.Title,
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		Description: req.Description,
		Features:    req.Features,
	}
	if err := h.engine.AddItem(r.Context(), item); err != nil {
		respondEngineError(w, r, "Failed to store item", err)
		return
	}

	respondSuccess(w, r, http.StatusCreated, map[string]string{"item_id": req.ItemID}, start)
}

// CreateInteraction handles POST /api/v1/interactions
func (h *Handler) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateInteractionRequest
	if !decodeJSON(w, r, &req, maxBodyBytes) {
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	req.ItemID = strings.TrimSpace(req.ItemID)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	in := recommend.Interaction{
		UserID: req.UserID,
		ItemID: req.ItemID,
		Type:   recommend.InteractionType(req.InteractionType),
		Rating: req.Rating,
	}
	if req.Timestamp != "" {
		ts, err := recommend.ParseTimestamp(string(req.Timestamp))
		if err != nil {
			respondEngineError(w, r, "Invalid timestamp", err)
			return
		}
		in.Timestamp = ts
	}

	if err := h.engine.RecordInteraction(r.Context(), in); err != nil {
		respondEngineError(w, r, "Failed to record interaction", err)
		return
	}

	respondSuccess(w, r, http.StatusCreated, map[string]string{
		"user_id": req.UserID,
		"item_id": req.ItemID,
	}, start)
}

// LoadSampleData handles POST /api/v1/sample-data
//
// Replaces the stored data with the demo data set. Disabled in production.
func (h *Handler) LoadSampleData(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.config != nil && h.config.IsProduction() {
		logging.Ctx(r.Context()).Warn().
			Str("environment", h.config.Server.Environment).
			Msg("Blocked sample data load in production environment")
		respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "Sample data cannot be loaded in production", nil)
		return
	}

	summary, err := h.engine.LoadSampleData(r.Context())
	if err != nil {
		respondEngineError(w, r, "Failed to load sample data", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("items", summary.Items).
		Int("users", summary.Users).
		Int("interactions", summary.Interactions).
		Int("profiles", summary.Profiles).
		Msg("Sample data loaded")

	respondSuccess(w, r, http.StatusOK, summary, start)
}
