// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"strings"
	"time"
)

// CategoryGeneral is the catch-all category for items and queries that do
// not match any entry of the category table.
const CategoryGeneral = "general"

// InteractionType classifies user-item interactions.
type InteractionType string

const (
	// InteractionView is a passive view of an item.
	InteractionView InteractionType = "view"
	// InteractionClick is a click-through from a listing.
	InteractionClick InteractionType = "click"
	// InteractionLike is an explicit positive signal.
	InteractionLike InteractionType = "like"
	// InteractionShare is a share of the item with others.
	InteractionShare InteractionType = "share"
	// InteractionRating carries an explicit rating value.
	InteractionRating InteractionType = "rating"
	// InteractionPurchase is a completed purchase.
	InteractionPurchase InteractionType = "purchase"
)

// InteractionTypes lists every accepted interaction type.
var InteractionTypes = []InteractionType{
	InteractionView,
	InteractionClick,
	InteractionLike,
	InteractionShare,
	InteractionRating,
	InteractionPurchase,
}

// ParseInteractionType normalizes s into an InteractionType.
// An empty string maps to InteractionView.
func ParseInteractionType(s string) (InteractionType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return InteractionView, true
	}
	for _, t := range InteractionTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Source is the provenance tag carried by every ScoredItem.
type Source string

const (
	// SourceDatabase marks items read from the item store.
	SourceDatabase Source = "database"
	// SourcePersonalized marks items synthesized from a search profile.
	SourcePersonalized Source = "personalized"
	// SourceQuery marks items synthesized for a literal query.
	SourceQuery Source = "query"
	// SourceTrending marks query-driven trending items.
	SourceTrending Source = "trending"
	// SourceRealTime marks curated trending topics.
	SourceRealTime Source = "real-time"
	// SourceFallback marks entries of the fixed trending fallback set.
	SourceFallback Source = "fallback"
	// SourceDefault marks entries of the fixed default catalog.
	SourceDefault Source = "default"
)

// Item is a content item.
type Item struct {
	// ItemID is the unique, stable identifier.
	ItemID string `json:"item_id"`

	// Title is the human readable title.
	Title string `json:"title"`

	// Category is one of the category table names or "general".
	Category string `json:"category"`

	// Description is the free text used for similarity ranking.
	Description string `json:"description"`

	// Features is an ordered list of tags. May be empty.
	Features []string `json:"features"`

	// CreatedAt is set on first ingestion.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Text returns the lowercased "title description" string used by the
// query relevance scorer.
func (i *Item) Text() string {
	return strings.ToLower(i.Title + " " + i.Description)
}

// Interaction is an append-only user-item event.
type Interaction struct {
	UserID    string          `json:"user_id"`
	ItemID    string          `json:"item_id"`
	Type      InteractionType `json:"interaction_type"`
	Rating    *float64        `json:"rating,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// User is a known user of the system.
type User struct {
	UserID      string    `json:"user_id"`
	Preferences []string  `json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemCount pairs an item with its aggregate interaction count.
type ItemCount struct {
	Item  Item
	Count int
}

// ScoredItem is an Item augmented with optional scores and a mandatory
// provenance tag. Score fields are pointers so that "absent" can be told
// apart from zero.
type ScoredItem struct {
	Item

	// RelevanceScore is always within [0, 1]. Use SetRelevance to write it.
	RelevanceScore *float64 `json:"relevance_score,omitempty"`

	// TrendScore is a non-negative window-scoped popularity value.
	TrendScore *int `json:"trend_score,omitempty"`

	// SimilarityScore is the cosine similarity assigned by the content ranker.
	SimilarityScore *float64 `json:"similarity_score,omitempty"`

	// Source records which subsystem produced the item.
	Source Source `json:"source"`

	// URL is the outbound reference link for synthesized content.
	URL string `json:"url,omitempty"`

	// SourceName is the display name of the outbound source.
	SourceName string `json:"source_name,omitempty"`

	// Intent is set on query-synthesized items.
	Intent Intent `json:"intent,omitempty"`
}

// SetRelevance stores v clamped to [0, 1].
func (s *ScoredItem) SetRelevance(v float64) {
	v = clamp01(v)
	s.RelevanceScore = &v
}

// Relevance returns the relevance score, or 0 when absent.
func (s *ScoredItem) Relevance() float64 {
	if s.RelevanceScore == nil {
		return 0
	}
	return *s.RelevanceScore
}

// SetTrend stores v, flooring negative values at zero.
func (s *ScoredItem) SetTrend(v int) {
	if v < 0 {
		v = 0
	}
	s.TrendScore = &v
}

// Trend returns the trend score, or 0 when absent.
func (s *ScoredItem) Trend() int {
	if s.TrendScore == nil {
		return 0
	}
	return *s.TrendScore
}

// HasTrend reports whether a trend score was assigned.
func (s *ScoredItem) HasTrend() bool {
	return s.TrendScore != nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Mode selects the ranking pipeline for a recommendation request.
type Mode string

const (
	// ModeStandard ranks stored items from interaction history only.
	ModeStandard Mode = "standard"
	// ModeSearch uses the query or the user's search profile.
	ModeSearch Mode = "search"
	// ModeTrending ranks time-windowed popular content.
	ModeTrending Mode = "trending"
)

// RecommendRequest is the input of Engine.Recommend.
type RecommendRequest struct {
	// RequestID is generated when empty.
	RequestID string

	UserID string

	// Limit is the maximum number of items. Zero or negative selects the default.
	Limit int

	// Query is an optional free-text query.
	Query string

	// SearchBased enables the search-powered pipeline.
	SearchBased bool
}

// TrendingRequest is the input of Engine.Trending.
type TrendingRequest struct {
	RequestID string

	// Window is the trailing time window. Zero selects the configured default.
	Window time.Duration

	Limit    int
	Category string
	Query    string
}

// Response is the output of every ranking operation.
type Response struct {
	Items    []ScoredItem     `json:"items"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`
	Mode      Mode   `json:"mode"`

	// Tier is the name of the strategy that produced the items.
	Tier string `json:"tier"`

	// Fallbacks lists tiers that were tried and skipped, in order.
	Fallbacks []string `json:"fallbacks,omitempty"`

	Limit       int       `json:"limit"`
	LatencyMS   int64     `json:"latency_ms"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ItemStore is the item persistence boundary consumed by the engine.
type ItemStore interface {
	// UpsertItem inserts or replaces an item by id.
	UpsertItem(ctx context.Context, item Item) error

	// GetItems returns the items that exist among ids, in ids order.
	GetItems(ctx context.Context, ids []string) ([]Item, error)

	// AllItems returns up to limit items in insertion order. limit <= 0 means all.
	AllItems(ctx context.Context, limit int) ([]Item, error)

	// PopularityRank returns items not in exclude ordered by interaction
	// count descending. Ties, including zero-count items, keep insertion order.
	PopularityRank(ctx context.Context, exclude map[string]struct{}, limit int) ([]ItemCount, error)
}

// InteractionStore is the interaction persistence boundary consumed by the engine.
type InteractionStore interface {
	// AppendInteraction records a new interaction.
	AppendInteraction(ctx context.Context, in Interaction) error

	// RecentForUser returns up to limit interactions of userID, newest first.
	RecentForUser(ctx context.Context, userID string, limit int) ([]Interaction, error)

	// InWindow returns every interaction with Timestamp >= since in
	// chronological order.
	InWindow(ctx context.Context, since time.Time) ([]Interaction, error)
}

// UserStore persists users.
type UserStore interface {
	UpsertUser(ctx context.Context, user User) error
}

// Store combines every persistence boundary.
type Store interface {
	ItemStore
	InteractionStore
	UserStore
}

// StoreStats holds record counts reported by a store.
type StoreStats struct {
	Backend      string `json:"backend"`
	Items        int    `json:"items_count"`
	Users        int    `json:"users_count"`
	Interactions int    `json:"interactions_count"`

	// BreakerState is set by stores guarded by a circuit breaker.
	BreakerState string `json:"breaker_state,omitempty"`
}

// StatsProvider is implemented by stores that can report record counts.
type StatsProvider interface {
	Stats(ctx context.Context) (StoreStats, error)
}

// Resetter is implemented by stores that can drop all records.
type Resetter interface {
	Reset(ctx context.Context) error
}

// ProfileRepository persists search intent profiles.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, p *SearchIntentProfile) error
	LoadProfiles(ctx context.Context) ([]*SearchIntentProfile, error)
}
