// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Tier names.
const (
	TierDatabase         = "database"
	TierDefault          = "default"
	TierQuery            = "query"
	TierPersonalized     = "personalized"
	TierSeeded           = "seeded"
	TierQueryTrending    = "query-trending"
	TierRealTime         = "real-time"
	TierTrendingFallback = "trending-fallback"
)

// tier is one strategy of a fallback chain. An error or an empty result
// hands the request to the next tier.
type tier struct {
	name string

	// source tags items the tier returns without one.
	source Source

	run func(ctx context.Context) ([]ScoredItem, error)
}

// chainResult is the outcome of evaluating a chain.
type chainResult struct {
	items     []ScoredItem
	tier      string
	fallbacks []string
}

// runChain evaluates tiers in order and returns the first non-empty
// result, truncated to limit. The final tier of every chain is a static
// catalog, so the result is empty only for an empty chain.
func (e *Engine) runChain(ctx context.Context, mode Mode, limit int, tiers []tier, logger zerolog.Logger) chainResult {
	var res chainResult
	for _, t := range tiers {
		items, err := runTier(ctx, t)
		if err == nil && len(items) == 0 {
			err = ErrEmptyResult
		}
		if err == nil {
			items = truncate(items, limit)
			for i := range items {
				if items[i].Source == "" {
					items[i].Source = t.source
				}
			}
			res.items = items
			res.tier = t.name
			logger.Debug().Str("tier", t.name).Int("items", len(items)).Msg("tier answered")
			return res
		}

		res.fallbacks = append(res.fallbacks, t.name)
		e.fallbackCount.Add(1)
		e.observer.ObserveFallback(mode, t.name)
		logger.Warn().Err(err).Str("tier", t.name).Msg("tier produced no result, falling back")
	}
	return res
}

// runTier calls t.run, converting a panic into an error.
func runTier(ctx context.Context, t tier) (items []ScoredItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("tier %s panicked: %v", t.name, r)
		}
	}()
	return t.run(ctx)
}

// tierNames returns the names of tiers in evaluation order.
func tierNames(tiers []tier) []string {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.name
	}
	return names
}
