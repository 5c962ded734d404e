// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/cache"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/metrics"
)

const (
	defaultMaintenanceInterval = 5 * time.Minute
	maintenanceTimeout         = 2 * time.Minute
)

// Maintainer runs one round of housekeeping. *recommend.Engine satisfies it.
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// CacheReporter is a cache whose counters are exported as metrics.
// *cache.LRU satisfies it.
type CacheReporter interface {
	Stats() cache.Stats
	CleanupExpired() int
}

// MaintenanceServiceConfig holds configuration for MaintenanceService.
type MaintenanceServiceConfig struct {
	// Interval between rounds. Default: 5m
	Interval time.Duration

	// RunOnStartup performs a round before waiting for the first tick.
	RunOnStartup bool
}

// MaintenanceService periodically expires cached query analyses, runs
// store housekeeping (BadgerDB value log GC) and refreshes the cache and
// uptime gauges.
type MaintenanceService struct {
	target  Maintainer
	caches  map[string]CacheReporter
	config  MaintenanceServiceConfig
	started time.Time
	logger  zerolog.Logger
	name    string
}

// NewMaintenanceService creates a maintenance service for target. caches
// maps a metric label to each cache to report; it may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(target Maintainer, caches map[string]CacheReporter, cfg MaintenanceServiceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultMaintenanceInterval
	}
	return &MaintenanceService{
		target:  target,
		caches:  caches,
		config:  cfg,
		started: time.Now(),
		logger:  logger.With().Str("service", "maintenance").Logger(),
		name:    "maintenance-service",
	}
}

// Serve implements suture.Service. Failed rounds are logged and counted
// but never returned, so a flaky store does not trigger restarts.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("run_on_startup", s.config.RunOnStartup).
		Msg("maintenance service starting")

	if s.config.RunOnStartup {
		s.RunOnce(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("maintenance service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single maintenance round and returns its error, which
// has already been logged and recorded.
func (s *MaintenanceService) RunOnce(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	start := time.Now()

	for name, c := range s.caches {
		expired := c.CleanupExpired()
		stats := c.Stats()
		metrics.RecordCacheStats(name, stats.Size, stats.HitRate(), expired)
		if expired > 0 {
			s.logger.Debug().Str("cache", name).Int("expired", expired).Msg("expired cache entries removed")
		}
	}

	err := s.target.Maintain(runCtx)
	metrics.RecordMaintenance(err)
	metrics.UpdateUptime(s.started)

	if err != nil {
		s.logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("maintenance round failed")
		return err
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("maintenance round complete")
	return nil
}

// String identifies the service in supervisor events.
func (s *MaintenanceService) String() string {
	return s.name
}
