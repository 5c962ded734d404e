// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package synth

import (
	"fmt"
	"strings"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// queryTemplates holds five titles per intent. Unknown intents use the
// general set.
var queryTemplates = map[recommend.Intent][]string{
	recommend.IntentLearning: {
		"How to Learn %s",
		"%s Tutorial for Beginners",
		"Complete %s Guide",
		"%s Step-by-Step Course",
		"Master %s Skills",
	},
	recommend.IntentRecommendation: {
		"Best %s Recommendations",
		"Top %s Picks 2024",
		"Expert %s Suggestions",
		"Recommended %s Resources",
		"Ultimate %s List",
	},
	recommend.IntentShopping: {
		"Best %s to Buy",
		"%s Deals and Offers",
		"Where to Buy %s",
		"%s Price Comparison",
		"Cheap %s Options",
	},
	recommend.IntentTrending: {
		"Trending %s Topics",
		"Latest %s News",
		"Popular %s Content",
		"What's Hot in %s",
		"%s Viral Content",
	},
	recommend.IntentResearch: {
		"%s Reviews and Analysis",
		"%s Comparison Guide",
		"%s Pros and Cons",
		"Expert %s Opinions",
		"%s Research Papers",
	},
	recommend.IntentGeneral: {
		"Everything About %s",
		"%s Complete Guide",
		"%s Tips and Tricks",
		"%s Best Practices",
		"Advanced %s Techniques",
	},
}

var queryTrendingTemplates = []string{
	"Trending: %s News",
	"Latest %s Updates",
	"Breaking: %s Developments",
	"Viral %s Content",
	"Popular %s Discussions",
	"%s Social Media Buzz",
	"Hot %s Topics",
	"%s Community Trends",
	"Emerging %s Trends",
	"%s Industry News",
}

// queryURL returns the search destination for query under intent.
func queryURL(query string, intent recommend.Intent) string {
	q := queryParam(query)
	switch intent {
	case recommend.IntentLearning:
		return "https://www.coursera.org/search?query=" + q
	case recommend.IntentShopping:
		return "https://www.amazon.com/s?k=" + q
	case recommend.IntentTrending:
		return "https://trends.google.com/trends/explore?q=" + q
	case recommend.IntentResearch:
		return "https://scholar.google.com/scholar?q=" + q
	case recommend.IntentRecommendation:
		return "https://www.reddit.com/search/?q=" + q + "+recommendations"
	default:
		return "https://www.google.com/search?q=" + q
	}
}

// trendingURL picks a destination from the wording of a trending title.
func trendingURL(query, title string) string {
	q := queryParam(query)
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "news"):
		return "https://news.google.com/search?q=" + q
	case strings.Contains(lower, "social"):
		return "https://twitter.com/search?q=" + q
	case strings.Contains(lower, "reddit"), strings.Contains(lower, "discussion"):
		return "https://www.reddit.com/search/?q=" + q
	default:
		return "https://trends.google.com/trends/explore?q=" + q
	}
}

// synthesizedCategory is the item category for query-driven content.
func synthesizedCategory(a recommend.Analysis) string {
	if a.PrimaryCategory == "" {
		return recommend.CategoryGeneral
	}
	return a.PrimaryCategory
}

// QueryRecommendations returns up to five intent-specific items for the
// analyzed query, with relevance 0.95 decreasing by 0.05 per position.
//
//nolint:gocritic // hugeParam: analysis passed by value, read-only
func (s *Synthesizer) QueryRecommendations(a recommend.Analysis, limit int) []recommend.ScoredItem {
	if a.Query == "" || limit <= 0 {
		return nil
	}

	templates, ok := s.queryTemplates[a.Intent]
	if !ok {
		templates = s.queryTemplates[recommend.IntentGeneral]
	}

	title := titleCase(a.Query)
	link := queryURL(a.Query, a.Intent)
	category := synthesizedCategory(a)

	n := min(limit, len(templates))
	items := make([]recommend.ScoredItem, n)
	for i := 0; i < n; i++ {
		items[i] = recommend.ScoredItem{
			Item: recommend.Item{
				ItemID:      fmt.Sprintf("query_rec_%d", i),
				Title:       fill(templates[i], title),
				Category:    category,
				Description: fmt.Sprintf("Personalized content about %s based on your search intent", a.Query),
				Features:    []string{},
			},
			Source:     recommend.SourceQuery,
			URL:        link,
			SourceName: title + " Resource",
			Intent:     a.Intent,
		}
		items[i].SetRelevance(0.95 - 0.05*float64(i))
	}
	return items
}

// QueryTrending returns up to ten trending items for the analyzed query,
// with trend 100 decreasing by 5 per position.
//
//nolint:gocritic // hugeParam: analysis passed by value, read-only
func (s *Synthesizer) QueryTrending(a recommend.Analysis, limit int) []recommend.ScoredItem {
	if a.Query == "" || limit <= 0 {
		return nil
	}

	title := titleCase(a.Query)
	category := synthesizedCategory(a)

	n := min(limit, len(s.trendingTemplates))
	items := make([]recommend.ScoredItem, n)
	for i := 0; i < n; i++ {
		t := fill(s.trendingTemplates[i], title)
		items[i] = recommend.ScoredItem{
			Item: recommend.Item{
				ItemID:      fmt.Sprintf("query_trending_%d", i),
				Title:       t,
				Category:    category,
				Description: fmt.Sprintf("Real-time trending content about %s", a.Query),
				Features:    []string{},
			},
			Source:     recommend.SourceTrending,
			URL:        trendingURL(a.Query, t),
			SourceName: "Trending Source",
			Intent:     a.Intent,
		}
		items[i].SetTrend(100 - 5*i)
	}
	return items
}
