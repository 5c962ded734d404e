// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

// Request structs with go-playground/validator tags. Query-string requests
// are filled by the handler before validation; JSON bodies are decoded
// straight into them. Field names in validation errors come from the json
// tags.

import (
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	UserID      string   `json:"user_id" validate:"required,max=128,identifier"`
	Preferences []string `json:"preferences" validate:"max=50,dive,max=64"`
}

// CreateItemRequest is the body of POST /api/v1/items.
type CreateItemRequest struct {
	ItemID      string   `json:"item_id" validate:"required,max=128,identifier"`
	Title       string   `json:"title" validate:"required,max=512"`
	Category    string   `json:"category" validate:"max=64"`
	Description string   `json:"description" validate:"max=8192"`
	Features    []string `json:"features" validate:"max=100,dive,max=128"`
}

// CreateInteractionRequest is the body of POST /api/v1/interactions.
// Timestamp accepts the same forms as browser history timestamps and
// defaults to the current time.
type CreateInteractionRequest struct {
	UserID          string                 `json:"user_id" validate:"required,max=128,identifier"`
	ItemID          string                 `json:"item_id" validate:"required,max=128,identifier"`
	InteractionType string                 `json:"interaction_type" validate:"interaction_type"`
	Rating          *float64               `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Timestamp       recommend.RawTimestamp `json:"timestamp,omitempty"`
}

// SearchHistoryRequest is the body of POST /api/v1/search-history.
type SearchHistoryRequest struct {
	UserID  string                   `json:"user_id" validate:"required,max=128,identifier"`
	History []recommend.HistoryEntry `json:"history" validate:"required,min=1,max=10000"`
}

// RecommendationsRequest holds the validated parameters of
// GET /api/v1/recommendations/{userID}.
type RecommendationsRequest struct {
	UserID      string `json:"user_id" validate:"required,max=128,identifier"`
	Limit       int    `json:"limit"`
	Query       string `json:"query" validate:"max=512"`
	SearchBased bool   `json:"search_based"`
}

// TrendingRequest holds the validated parameters of GET /api/v1/trending.
// Hours <= 0 selects the configured window.
type TrendingRequest struct {
	Hours    int    `json:"hours" validate:"lte=720"`
	Limit    int    `json:"limit"`
	Category string `json:"category" validate:"max=64"`
	Query    string `json:"query" validate:"max=512"`
}

// ClassifyRequest holds the validated parameters of GET /api/v1/classify.
type ClassifyRequest struct {
	Query string `json:"q" validate:"required,max=512"`
}

// SuggestionsRequest holds the validated parameters of
// GET /api/v1/search-suggestions.
type SuggestionsRequest struct {
	Query string `json:"q" validate:"max=512"`
	Limit int    `json:"limit" validate:"lte=20"`
}

// ProfileRequest holds the path parameter of the profile endpoints.
type ProfileRequest struct {
	UserID string `json:"user_id" validate:"required,max=128,identifier"`
	Limit  int    `json:"limit" validate:"lte=20"`
}
