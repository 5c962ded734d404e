// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import "time"

// ContentSynthesizer produces candidate items from static content
// catalogs. Implementations must be deterministic for identical inputs
// and may return fewer than limit items, or none.
type ContentSynthesizer interface {
	// QueryRecommendations returns intent-specific items for a query.
	QueryRecommendations(analysis Analysis, limit int) []ScoredItem

	// QueryTrending returns trending items for a query.
	QueryTrending(analysis Analysis, limit int) []ScoredItem

	// Personalized returns items for search keywords and categories.
	Personalized(keywords, categories []string, limit int) []ScoredItem

	// CategoryTrending returns curated trending topics for a category.
	// An empty or unknown category mixes topics across categories.
	CategoryTrending(category string, limit int) []ScoredItem

	// Suggestions completes a partial query.
	Suggestions(partial string, limit int) []string
}

// AnalysisCache memoizes query analyses. Implementations must be safe for
// concurrent use.
type AnalysisCache interface {
	Get(key string) (Analysis, bool)
	Add(key string, value Analysis)
}

// Observer receives engine events, typically to export metrics.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveRequest is called once per ranking request.
	ObserveRequest(mode Mode, tier string, items int, latency time.Duration)

	// ObserveFallback is called when a tier is skipped.
	ObserveFallback(mode Mode, tier string)

	// ObserveProfileUpdate is called after a profile is replaced.
	ObserveProfileUpdate(queries int, profiles int)

	// ObserveClassification is called per classification with its cache outcome.
	ObserveClassification(intent Intent, cached bool)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(Mode, string, int, time.Duration) {}
func (nopObserver) ObserveFallback(Mode, string)                    {}
func (nopObserver) ObserveProfileUpdate(int, int)                   {}
func (nopObserver) ObserveClassification(Intent, bool)              {}
