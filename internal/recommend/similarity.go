// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend/algorithms"
)

// SimilarityRanker reorders candidates by TF-IDF cosine similarity to the
// descriptions of the user's most recent items.
type SimilarityRanker struct {
	items       ItemStore
	vectorizer  *algorithms.TFIDF
	recentItems int
	logger      zerolog.Logger
}

// NewSimilarityRanker creates a ranker.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSimilarityRanker(items ItemStore, cfg SimilarityConfig, logger zerolog.Logger) *SimilarityRanker {
	return &SimilarityRanker{
		items:       items,
		vectorizer:  algorithms.NewTFIDF(cfg.MaxFeatures),
		recentItems: cfg.RecentItems,
		logger:      logger.With().Str("component", "similarity").Logger(),
	}
}

// referenceIDs returns the distinct item ids among the newest interactions.
func (r *SimilarityRanker) referenceIDs(recent []Interaction) []string {
	n := len(recent)
	if n > r.recentItems {
		n = r.recentItems
	}
	seen := make(map[string]struct{}, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := recent[i].ItemID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Rank sorts candidates in place by descending similarity, keeping the
// original order on ties, and reports whether scoring was applied.
//
// Candidates pass through untouched when the user has no resolvable
// recent items, the combined vocabulary is empty, or fewer than two
// documents are available.
func (r *SimilarityRanker) Rank(ctx context.Context, recent []Interaction, candidates []ScoredItem) bool {
	ids := r.referenceIDs(recent)
	if len(ids) == 0 || len(candidates) == 0 {
		return false
	}

	refs, err := r.items.GetItems(ctx, ids)
	if err != nil {
		r.logger.Warn().Err(err).Msg("reference items unavailable, skipping similarity ranking")
		return false
	}
	if len(refs) == 0 {
		return false
	}

	docs := make([]string, 0, len(refs)+len(candidates))
	for i := range refs {
		docs = append(docs, refs[i].Description)
	}
	for i := range candidates {
		docs = append(docs, candidates[i].Description)
	}
	if len(docs) < 2 {
		return false
	}

	m, err := r.vectorizer.FitTransform(docs)
	if err != nil {
		if !errors.Is(err, algorithms.ErrEmptyVocabulary) {
			r.logger.Warn().Err(err).Msg("vectorization failed")
		}
		return false
	}

	reference := algorithms.Mean(m.Rows[:len(refs)])
	for i := range candidates {
		score := algorithms.Cosine(reference, m.Rows[len(refs)+i])
		candidates[i].SimilarityScore = &score
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return *candidates[i].SimilarityScore > *candidates[j].SimilarityScore
	})

	r.logger.Debug().
		Int("references", len(refs)).
		Int("candidates", len(candidates)).
		Int("vocabulary", len(m.Vocabulary)).
		Msg("similarity ranking applied")
	return true
}
