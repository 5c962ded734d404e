// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package config

import (
	"fmt"
	"time"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	engine, err := recommend.NewEngine(cfg.Recommend.Engine(), store, synth, logger)
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Storage     StorageConfig     `koanf:"storage"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Maintenance MaintenanceConfig `koanf:"maintenance"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`

	// SeedSampleData loads the demo catalog at startup.
	SeedSampleData bool `koanf:"seed_sample_data"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"` // Read/write timeout per request
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Storage backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// StorageConfig selects and tunes the item and interaction store.
type StorageConfig struct {
	// Backend is "memory" (default) or "badger".
	Backend string `koanf:"backend"`

	// Path is the BadgerDB directory (required when backend=badger).
	Path string `koanf:"path"`

	// SyncWrites fsyncs every BadgerDB write.
	SyncWrites bool `koanf:"sync_writes"`

	// GCRatio is the BadgerDB value log discard ratio.
	GCRatio float64 `koanf:"gc_ratio"`

	// PersistProfiles stores search intent profiles alongside the data
	// (badger only) and restores them at startup.
	PersistProfiles bool `koanf:"persist_profiles"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker guarding the store.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`      // Allowed requests while half-open
	Interval         time.Duration `koanf:"interval"`          // Count reset period while closed
	Timeout          time.Duration `koanf:"timeout"`           // Open duration before half-open
	FailureThreshold uint32        `koanf:"failure_threshold"` // Consecutive failures that open the breaker
}

// RecommendConfig holds ranking engine settings. See recommend.Config for
// the meaning of each field.
type RecommendConfig struct {
	DefaultLimit          int           `koanf:"default_limit"`
	MaxLimit              int           `koanf:"max_limit"`
	HistorySize           int           `koanf:"history_size"`
	CandidateMultiplier   int           `koanf:"candidate_multiplier"`
	SimilarityRecentItems int           `koanf:"similarity_recent_items"`
	MaxFeatures           int           `koanf:"max_features"`
	TrendingWindow        time.Duration `koanf:"trending_window"`
	DefaultTrendScore     int           `koanf:"default_trend_score"`
	ProfileRecentQueries  int           `koanf:"profile_recent_queries"`
	ProfileRecencyWindow  time.Duration `koanf:"profile_recency_window"`
	ProfileTopCategories  int           `koanf:"profile_top_categories"`
	ProfileKeywordQueries int           `koanf:"profile_keyword_queries"`
	CacheEnabled          bool          `koanf:"cache_enabled"`
	CacheTTL              time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries       int           `koanf:"cache_max_entries"`
}

// Engine converts the settings into a recommend.Config.
func (r RecommendConfig) Engine() *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultLimit: r.DefaultLimit,
			MaxLimit:     r.MaxLimit,
		},
		Candidates: recommend.CandidatesConfig{
			HistorySize: r.HistorySize,
			Multiplier:  r.CandidateMultiplier,
		},
		Similarity: recommend.SimilarityConfig{
			RecentItems: r.SimilarityRecentItems,
			MaxFeatures: r.MaxFeatures,
		},
		Trending: recommend.TrendingConfig{
			DefaultWindow:     r.TrendingWindow,
			DefaultTrendScore: r.DefaultTrendScore,
		},
		Profile: recommend.ProfileConfig{
			RecentQueries:  r.ProfileRecentQueries,
			RecencyWindow:  r.ProfileRecencyWindow,
			TopCategories:  r.ProfileTopCategories,
			KeywordQueries: r.ProfileKeywordQueries,
		},
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			TTL:        r.CacheTTL,
			MaxEntries: r.CacheMaxEntries,
		},
	}
}

// recommendDefaults mirrors recommend.DefaultConfig.
func recommendDefaults() RecommendConfig {
	d := recommend.DefaultConfig()
	return RecommendConfig{
		DefaultLimit:          d.Limits.DefaultLimit,
		MaxLimit:              d.Limits.MaxLimit,
		HistorySize:           d.Candidates.HistorySize,
		CandidateMultiplier:   d.Candidates.Multiplier,
		SimilarityRecentItems: d.Similarity.RecentItems,
		MaxFeatures:           d.Similarity.MaxFeatures,
		TrendingWindow:        d.Trending.DefaultWindow,
		DefaultTrendScore:     d.Trending.DefaultTrendScore,
		ProfileRecentQueries:  d.Profile.RecentQueries,
		ProfileRecencyWindow:  d.Profile.RecencyWindow,
		ProfileTopCategories:  d.Profile.TopCategories,
		ProfileKeywordQueries: d.Profile.KeywordQueries,
		CacheEnabled:          d.Cache.Enabled,
		CacheTTL:              d.Cache.TTL,
		CacheMaxEntries:       d.Cache.MaxEntries,
	}
}

// MaintenanceConfig controls periodic housekeeping (cache expiry, value
// log GC).
type MaintenanceConfig struct {
	Interval time.Duration `koanf:"interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
