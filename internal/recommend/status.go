// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"errors"
)

// Status reports store contents and engine counters.
type Status struct {
	StoreStats

	SearchProfiles        int   `json:"search_profiles"`
	ProfilePersistErrors  int64 `json:"profile_persist_errors"`
	Requests              int64 `json:"requests"`
	Fallbacks             int64 `json:"fallbacks"`
	ClassifierCacheHits   int64 `json:"classifier_cache_hits"`
	ClassifierCacheMisses int64 `json:"classifier_cache_misses"`
	RealTimeEnabled       bool  `json:"real_time_enabled"`

	// Error is set when store statistics could not be read.
	Error string `json:"error,omitempty"`
}

// Status returns a snapshot of the engine state. Store failures are
// reported in Status.Error rather than returned.
func (e *Engine) Status(ctx context.Context) Status {
	s := Status{
		SearchProfiles:        e.profiles.Len(),
		ProfilePersistErrors:  e.profiles.PersistErrors(),
		Requests:              e.requestCount.Load(),
		Fallbacks:             e.fallbackCount.Load(),
		ClassifierCacheHits:   e.classifyHits.Load(),
		ClassifierCacheMisses: e.classifyMisses.Load(),
		RealTimeEnabled:       true,
	}

	sp, ok := e.store.(StatsProvider)
	if !ok {
		s.Backend = "unknown"
		return s
	}
	stats, err := sp.Stats(ctx)
	if err != nil {
		s.Backend = stats.Backend
		s.BreakerState = stats.BreakerState
		s.Error = err.Error()
		s.RealTimeEnabled = false
		return s
	}
	s.StoreStats = stats
	return s
}

// Maintainer is implemented by components with periodic housekeeping.
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// Maintain runs housekeeping on the store and the analysis cache when
// they support it. Every component is attempted; errors are joined.
func (e *Engine) Maintain(ctx context.Context) error {
	var errs []error
	if m, ok := e.store.(Maintainer); ok {
		if err := m.Maintain(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if m, ok := e.analyses.(Maintainer); ok {
		if err := m.Maintain(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
