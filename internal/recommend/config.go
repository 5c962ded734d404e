// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains result size bounds.
	Limits LimitsConfig `json:"limits"`

	// Candidates controls the candidate generator.
	Candidates CandidatesConfig `json:"candidates"`

	// Similarity controls the TF-IDF content ranker.
	Similarity SimilarityConfig `json:"similarity"`

	// Trending controls the trending aggregator.
	Trending TrendingConfig `json:"trending"`

	// Profile controls search intent profiles.
	Profile ProfileConfig `json:"profile"`

	// Cache controls memoization of query analyses.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request carries no positive limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps every request.
	// Default: 100.
	MaxLimit int `json:"max_limit"`
}

// CandidatesConfig controls candidate generation.
type CandidatesConfig struct {
	// HistorySize is how many recent interactions are read per user.
	// Default: 50.
	HistorySize int `json:"history_size"`

	// Multiplier sets the candidate pool size as Multiplier x limit.
	// Default: 2.
	Multiplier int `json:"multiplier"`
}

// SimilarityConfig controls the content similarity ranker.
type SimilarityConfig struct {
	// RecentItems is how many of the user's newest interactions form the
	// reference profile.
	// Default: 10.
	RecentItems int `json:"recent_items"`

	// MaxFeatures caps the TF-IDF vocabulary.
	// Default: 100.
	MaxFeatures int `json:"max_features"`
}

// TrendingConfig controls trending aggregation.
type TrendingConfig struct {
	// DefaultWindow is used when a request carries no window.
	// Default: 24h.
	DefaultWindow time.Duration `json:"default_window"`

	// DefaultTrendScore is assigned to merged items lacking a trend score.
	// Default: 50.
	DefaultTrendScore int `json:"default_trend_score"`
}

// ProfileConfig controls search intent profiles.
type ProfileConfig struct {
	// RecentQueries caps SearchIntentProfile.RecentQueries.
	// Default: 10.
	RecentQueries int `json:"recent_queries"`

	// RecencyWindow limits profile analysis to queries this close to the
	// newest query in the history. Zero disables the window.
	// Default: 7 days.
	RecencyWindow time.Duration `json:"recency_window"`

	// TopCategories caps SearchIntentProfile.TopCategories.
	// Default: 3.
	TopCategories int `json:"top_categories"`

	// KeywordQueries is how many recent queries seed personalized content.
	// Default: 5.
	KeywordQueries int `json:"keyword_queries"`
}

// CacheConfig controls caching parameters.
type CacheConfig struct {
	// Enabled turns on analysis memoization.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 10m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached analyses.
	// Default: 5000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
		Candidates: CandidatesConfig{
			HistorySize: 50,
			Multiplier:  2,
		},
		Similarity: SimilarityConfig{
			RecentItems: 10,
			MaxFeatures: 100,
		},
		Trending: TrendingConfig{
			DefaultWindow:     24 * time.Hour,
			DefaultTrendScore: 50,
		},
		Profile: ProfileConfig{
			RecentQueries:  10,
			RecencyWindow:  7 * 24 * time.Hour,
			TopCategories:  3,
			KeywordQueries: 5,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 5000,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Candidates.HistorySize < 1 {
		return fmt.Errorf("candidates.history_size must be positive, got %d", c.Candidates.HistorySize)
	}
	if c.Candidates.Multiplier < 1 {
		return fmt.Errorf("candidates.multiplier must be positive, got %d", c.Candidates.Multiplier)
	}
	if c.Similarity.RecentItems < 1 {
		return fmt.Errorf("similarity.recent_items must be positive, got %d", c.Similarity.RecentItems)
	}
	if c.Similarity.MaxFeatures < 1 {
		return fmt.Errorf("similarity.max_features must be positive, got %d", c.Similarity.MaxFeatures)
	}
	if c.Trending.DefaultWindow <= 0 {
		return fmt.Errorf("trending.default_window must be positive, got %v", c.Trending.DefaultWindow)
	}
	if c.Trending.DefaultTrendScore < 0 {
		return fmt.Errorf("trending.default_trend_score must be non-negative, got %d", c.Trending.DefaultTrendScore)
	}
	if c.Profile.RecentQueries < 1 {
		return fmt.Errorf("profile.recent_queries must be positive, got %d", c.Profile.RecentQueries)
	}
	if c.Profile.RecencyWindow < 0 {
		return fmt.Errorf("profile.recency_window must be non-negative, got %v", c.Profile.RecencyWindow)
	}
	if c.Profile.TopCategories < 1 {
		return fmt.Errorf("profile.top_categories must be positive, got %d", c.Profile.TopCategories)
	}
	if c.Profile.KeywordQueries < 1 {
		return fmt.Errorf("profile.keyword_queries must be positive, got %d", c.Profile.KeywordQueries)
	}
	if c.Cache.Enabled && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}

// clampLimit applies the default and maximum limits.
func (c *Config) clampLimit(limit int) int {
	if limit <= 0 {
		limit = c.Limits.DefaultLimit
	}
	if limit > c.Limits.MaxLimit {
		limit = c.Limits.MaxLimit
	}
	return limit
}
