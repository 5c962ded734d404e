// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

// defaultCatalog is served when no other standard tier produces items.
var defaultCatalog = []Item{
	{ItemID: "default_1", Title: "Getting Started Guide", Category: "education", Description: "Complete beginner guide to our platform"},
	{ItemID: "default_2", Title: "Popular Content", Category: "entertainment", Description: "Most popular content on our platform"},
	{ItemID: "default_3", Title: "Latest Updates", Category: "technology", Description: "Recent updates and new features"},
	{ItemID: "default_4", Title: "Trending Topics", Category: CategoryGeneral, Description: "What everyone is talking about"},
	{ItemID: "default_5", Title: "Recommended for You", Category: CategoryGeneral, Description: "Personalized content suggestions"},
}

type trendingFallbackEntry struct {
	item  Item
	score int
}

// trendingFallback is served when every trending tier is empty.
var trendingFallback = []trendingFallbackEntry{
	{item: Item{ItemID: "trending_fallback_1", Title: "Latest Technology Trends", Category: "technology", Description: "Current trends in technology and innovation"}, score: 95},
	{item: Item{ItemID: "trending_fallback_2", Title: "Popular Entertainment Content", Category: "entertainment", Description: "Trending movies, shows, and entertainment"}, score: 90},
	{item: Item{ItemID: "trending_fallback_3", Title: "Hot Shopping Deals", Category: "shopping", Description: "Best deals and trending products"}, score: 85},
}

// DefaultItems returns the first limit entries of the default catalog.
func DefaultItems(limit int) []ScoredItem {
	n := max(0, min(limit, len(defaultCatalog)))
	out := make([]ScoredItem, n)
	for i := 0; i < n; i++ {
		item := defaultCatalog[i]
		item.Features = []string{}
		out[i] = ScoredItem{Item: item, Source: SourceDefault}
	}
	return out
}

// FallbackTrending returns the first limit entries of the trending
// fallback set.
func FallbackTrending(limit int) []ScoredItem {
	n := max(0, min(limit, len(trendingFallback)))
	out := make([]ScoredItem, n)
	for i := 0; i < n; i++ {
		item := trendingFallback[i].item
		item.Features = []string{}
		out[i] = ScoredItem{Item: item, Source: SourceFallback}
		out[i].SetTrend(trendingFallback[i].score)
	}
	return out
}
