// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package main

import (
	"context"
	"fmt"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/cache"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/config"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/logging"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/metrics"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend/storage"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/supervisor/services"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/synth"
)

// analysisCacheName labels the query analysis cache in metrics.
const analysisCacheName = "query_analysis"

// storeBundle is the configured store plus the pieces main needs to
// manage separately.
type storeBundle struct {
	store recommend.Store

	// profiles is non-nil when search profiles are persisted.
	profiles recommend.ProfileRepository

	close func() error
}

// Close releases the underlying database, if any.
func (b *storeBundle) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// initStore opens the configured backend and wraps it in a circuit breaker
// when enabled. Persisted profiles go through the same breaker as the rest
// of the store.
func initStore(cfg *config.Config) (*storeBundle, error) {
	b := &storeBundle{}

	switch cfg.Storage.Backend {
	case config.BackendBadger:
		bs, err := storage.OpenBadgerStore(storage.BadgerOptions{
			Path:       cfg.Storage.Path,
			SyncWrites: cfg.Storage.SyncWrites,
			GCRatio:    cfg.Storage.GCRatio,
		}, logging.WithComponent("storage"))
		if err != nil {
			return nil, fmt.Errorf("open badger store at %s: %w", cfg.Storage.Path, err)
		}
		b.store = bs
		b.close = bs.Close
		if cfg.Storage.PersistProfiles {
			b.profiles = bs
		}
		logging.Info().Str("path", cfg.Storage.Path).Msg("BadgerDB store opened")
	default:
		b.store = storage.NewMemoryStore()
		logging.Info().Msg("Using in-memory store (data is lost on restart)")
	}

	if bc := cfg.Storage.Breaker; bc.Enabled {
		rs := storage.NewResilientStore(b.store, storage.BreakerConfig{
			Name:             "store",
			MaxRequests:      bc.MaxRequests,
			Interval:         bc.Interval,
			Timeout:          bc.Timeout,
			FailureThreshold: bc.FailureThreshold,
		},
			storage.WithBreakerObserver(metrics.Observer{}),
			storage.WithBreakerLogger(logging.WithComponent("breaker")),
		)
		b.store = rs
		if b.profiles != nil {
			b.profiles = rs
		}
	}

	return b, nil
}

// engineBundle is the engine with the caches exported by maintenance.
type engineBundle struct {
	engine *recommend.Engine
	caches map[string]services.CacheReporter
}

// initEngine builds the ranking engine, restores persisted profiles and
// optionally seeds the demo catalog.
func initEngine(ctx context.Context, cfg *config.Config, b *storeBundle) (*engineBundle, error) {
	engCfg := cfg.Recommend.Engine()

	opts := []recommend.Option{recommend.WithObserver(metrics.Observer{})}
	caches := make(map[string]services.CacheReporter)

	if engCfg.Cache.Enabled {
		analyses := cache.NewLRU[recommend.Analysis](engCfg.Cache.MaxEntries, engCfg.Cache.TTL)
		opts = append(opts, recommend.WithAnalysisCache(analyses))
		caches[analysisCacheName] = analyses
	}
	if b.profiles != nil {
		opts = append(opts, recommend.WithProfileRepository(b.profiles))
	}

	eng, err := recommend.NewEngine(engCfg, b.store, synth.New(), logging.Logger(), opts...)
	if err != nil {
		return nil, err
	}

	if b.profiles != nil {
		n, err := eng.RestoreProfiles(ctx)
		if err != nil {
			logging.Warn().Err(err).Msg("Failed to restore search profiles; starting with none")
		} else {
			logging.Info().Int("profiles", n).Msg("Search profiles restored")
		}
	}

	if cfg.SeedSampleData {
		if cfg.IsProduction() {
			logging.Warn().Msg("Ignoring SEED_SAMPLE_DATA in production")
		} else {
			summary, err := eng.LoadSampleData(ctx)
			if err != nil {
				return nil, fmt.Errorf("seed sample data: %w", err)
			}
			logging.Info().Int("items", summary.Items).Int("profiles", summary.Profiles).Msg("Sample data seeded")
		}
	}

	return &engineBundle{engine: eng, caches: caches}, nil
}
