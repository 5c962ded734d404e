// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"sort"
	"strings"
	"time"
)

// TrendingAggregator scores items by interaction volume times audience
// breadth over a trailing time window.
type TrendingAggregator struct {
	items        ItemStore
	interactions InteractionStore
	now          func() time.Time
}

// NewTrendingAggregator creates an aggregator. A nil clock selects time.Now.
func NewTrendingAggregator(items ItemStore, interactions InteractionStore, now func() time.Time) *TrendingAggregator {
	if now == nil {
		now = time.Now
	}
	return &TrendingAggregator{items: items, interactions: interactions, now: now}
}

type trendGroup struct {
	itemID string
	count  int
	users  map[string]struct{}
}

// Aggregate returns up to limit items with trend_score = interactions x
// distinct users within window, descending, ties in first-seen order.
// Items missing from the item store are dropped. A non-empty category
// keeps only items of that category, compared case-insensitively.
//
// An empty window yields an empty result. Store failures yield an empty
// result and the wrapped error.
func (a *TrendingAggregator) Aggregate(ctx context.Context, window time.Duration, category string, limit int) ([]ScoredItem, error) {
	since := a.now().Add(-window)
	interactions, err := a.interactions.InWindow(ctx, since)
	if err != nil {
		return nil, storeError("interactions in window", err)
	}
	if len(interactions) == 0 {
		return nil, nil
	}

	groups := make([]*trendGroup, 0)
	byItem := make(map[string]*trendGroup)
	for i := range interactions {
		in := &interactions[i]
		g, ok := byItem[in.ItemID]
		if !ok {
			g = &trendGroup{itemID: in.ItemID, users: make(map[string]struct{})}
			byItem[in.ItemID] = g
			groups = append(groups, g)
		}
		g.count++
		g.users[in.UserID] = struct{}{}
	}

	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.itemID
	}
	items, err := a.items.GetItems(ctx, ids)
	if err != nil {
		return nil, storeError("trending item metadata", err)
	}
	meta := make(map[string]Item, len(items))
	for i := range items {
		meta[items[i].ItemID] = items[i]
	}

	category = strings.TrimSpace(category)
	result := make([]ScoredItem, 0, len(groups))
	for _, g := range groups {
		item, ok := meta[g.itemID]
		if !ok {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		si := ScoredItem{Item: item, Source: SourceDatabase}
		si.SetTrend(g.count * len(g.users))
		result = append(result, si)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Trend() > result[j].Trend()
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
