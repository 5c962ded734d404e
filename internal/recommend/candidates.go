// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"errors"
	"fmt"
)

// Candidates is the output of CandidateGenerator.Generate.
type Candidates struct {
	// Items are ordered by global popularity.
	Items []Item

	// Recent holds the user's newest interactions, newest first.
	Recent []Interaction
}

// CandidateGenerator produces unranked candidate sets from interaction
// history, preferring unseen items and falling back to global popularity.
type CandidateGenerator struct {
	items        ItemStore
	interactions InteractionStore
	historySize  int
	multiplier   int
}

// NewCandidateGenerator creates a generator reading at most historySize
// interactions per user.
func NewCandidateGenerator(items ItemStore, interactions InteractionStore, cfg CandidatesConfig) *CandidateGenerator {
	return &CandidateGenerator{
		items:        items,
		interactions: interactions,
		historySize:  cfg.HistorySize,
		multiplier:   cfg.Multiplier,
	}
}

// Generate returns candidates for userID.
//
// Users without history get the limit most popular items. Users with
// history get up to multiplier x limit popular items they have not
// interacted with. Store failures are wrapped with ErrStoreUnavailable.
func (g *CandidateGenerator) Generate(ctx context.Context, userID string, limit int) (Candidates, error) {
	recent, err := g.interactions.RecentForUser(ctx, userID, g.historySize)
	if err != nil {
		return Candidates{}, storeError("recent interactions", err)
	}

	if len(recent) == 0 {
		ranked, err := g.items.PopularityRank(ctx, nil, limit)
		if err != nil {
			return Candidates{}, storeError("popularity rank", err)
		}
		return Candidates{Items: itemsOf(ranked)}, nil
	}

	exclude := make(map[string]struct{}, len(recent))
	for i := range recent {
		exclude[recent[i].ItemID] = struct{}{}
	}

	ranked, err := g.items.PopularityRank(ctx, exclude, limit*g.multiplier)
	if err != nil {
		return Candidates{}, storeError("popularity rank", err)
	}

	return Candidates{Items: itemsOf(ranked), Recent: recent}, nil
}

func itemsOf(ranked []ItemCount) []Item {
	items := make([]Item, len(ranked))
	for i := range ranked {
		items[i] = ranked[i].Item
	}
	return items
}

// storeError tags err with ErrStoreUnavailable unless it already carries it.
func storeError(op string, err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
