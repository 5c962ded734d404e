// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Intent is a coarse classification of what a query wants to accomplish.
type Intent string

const (
	IntentLearning       Intent = "learning"
	IntentRecommendation Intent = "recommendation"
	IntentShopping       Intent = "shopping"
	IntentTrending       Intent = "trending"
	IntentResearch       Intent = "research"
	IntentGeneral        Intent = "general"
)

// CategoryKeywords is one row of a category table.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// IntentPhrases is one row of the intent priority table.
type IntentPhrases struct {
	Intent  Intent
	Phrases []string
}

// DefaultCategoryTable is the ordered category table used for query
// classification. Order breaks score ties.
var DefaultCategoryTable = []CategoryKeywords{
	{Category: "technology", Keywords: []string{"python", "javascript", "programming", "ai", "machine learning", "web development", "software", "coding", "tech", "computer", "algorithm", "data science"}},
	{Category: "entertainment", Keywords: []string{"movie", "film", "netflix", "tv show", "series", "streaming", "music", "game", "gaming", "entertainment", "video", "cinema"}},
	{Category: "shopping", Keywords: []string{"buy", "purchase", "deal", "product", "review", "amazon", "shop", "store", "price", "discount", "sale", "electronics"}},
	{Category: "education", Keywords: []string{"learn", "course", "tutorial", "study", "education", "university", "school", "training", "certification", "book", "knowledge"}},
	{Category: "health", Keywords: []string{"health", "fitness", "exercise", "diet", "nutrition", "wellness", "medical", "doctor", "workout", "medicine", "mental health"}},
	{Category: "travel", Keywords: []string{"travel", "vacation", "trip", "hotel", "flight", "destination", "tourism", "holiday", "adventure", "explore", "journey"}},
}

// DefaultIntentTable lists intent phrase sets in priority order.
var DefaultIntentTable = []IntentPhrases{
	{Intent: IntentLearning, Phrases: []string{"how to", "tutorial", "learn", "guide"}},
	{Intent: IntentRecommendation, Phrases: []string{"best", "top", "recommend", "suggestion"}},
	{Intent: IntentShopping, Phrases: []string{"buy", "purchase", "deal", "price"}},
	{Intent: IntentTrending, Phrases: []string{"latest", "new", "trending", "popular"}},
	{Intent: IntentResearch, Phrases: []string{"review", "opinion", "compare"}},
}

// wordPattern matches word-boundary tokens, Unicode aware.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// minKeywordRunes is the exclusive lower bound on keyword length.
const minKeywordRunes = 2

// Analysis is the result of classifying a query.
type Analysis struct {
	Query           string   `json:"query"`
	Keywords        []string `json:"keywords"`
	PrimaryCategory string   `json:"primary_category"`
	Categories      []string `json:"categories"`
	Intent          Intent   `json:"intent"`

	// Scores holds the non-zero category scores.
	Scores map[string]int `json:"scores,omitempty"`
}

// clone returns a copy that shares no slices or maps with a.
func (a Analysis) clone() Analysis {
	out := a
	out.Keywords = append([]string(nil), a.Keywords...)
	out.Categories = append([]string(nil), a.Categories...)
	if a.Scores != nil {
		out.Scores = make(map[string]int, len(a.Scores))
		for k, v := range a.Scores {
			out.Scores[k] = v
		}
	}
	return out
}

// Classifier maps free text to a category distribution and an intent.
// It is stateless and safe for concurrent use.
type Classifier struct {
	categories []CategoryKeywords
	intents    []IntentPhrases
	maxTop     int
}

// NewClassifier creates a classifier over the given tables. Nil tables
// select the defaults.
func NewClassifier(categories []CategoryKeywords, intents []IntentPhrases) *Classifier {
	if categories == nil {
		categories = DefaultCategoryTable
	}
	if intents == nil {
		intents = DefaultIntentTable
	}
	return &Classifier{
		categories: categories,
		intents:    intents,
		maxTop:     3,
	}
}

// Classify analyzes query. It has no side effects.
func (c *Classifier) Classify(query string) Analysis {
	lower := strings.ToLower(strings.TrimSpace(query))
	keywords := ExtractKeywords(lower)
	scores := c.ScoreCategories(keywords)

	type ranked struct {
		category string
		score    int
		order    int
	}
	top := make([]ranked, 0, len(scores))
	for i, row := range c.categories {
		if s := scores[row.Category]; s > 0 {
			top = append(top, ranked{category: row.Category, score: s, order: i})
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].score > top[j].score
	})
	if len(top) > c.maxTop {
		top = top[:c.maxTop]
	}

	categories := make([]string, len(top))
	for i, r := range top {
		categories[i] = r.category
	}

	primary := CategoryGeneral
	if len(categories) > 0 {
		primary = categories[0]
	}

	return Analysis{
		Query:           query,
		Keywords:        keywords,
		PrimaryCategory: primary,
		Categories:      categories,
		Intent:          c.DetectIntent(lower),
		Scores:          scores,
	}
}

// ScoreCategories counts, per category, the (keyword, category keyword)
// pairs where either string contains the other. Zero scores are omitted.
func (c *Classifier) ScoreCategories(keywords []string) map[string]int {
	scores := make(map[string]int)
	for _, row := range c.categories {
		score := 0
		for _, kw := range keywords {
			for _, ck := range row.Keywords {
				if strings.Contains(ck, kw) || strings.Contains(kw, ck) {
					score++
				}
			}
		}
		if score > 0 {
			scores[row.Category] = score
		}
	}
	return scores
}

// DetectIntent returns the first intent whose phrase set has a substring
// match in the lowercased query, or IntentGeneral.
func (c *Classifier) DetectIntent(lowerQuery string) Intent {
	for _, row := range c.intents {
		for _, phrase := range row.Phrases {
			if strings.Contains(lowerQuery, phrase) {
				return row.Intent
			}
		}
	}
	return IntentGeneral
}

// ExtractKeywords tokenizes s on word boundaries and keeps tokens longer
// than two characters, first occurrence order, without duplicates.
// s is expected to be lowercased already.
func ExtractKeywords(s string) []string {
	tokens := wordPattern.FindAllString(s, -1)
	seen := make(map[string]struct{}, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= minKeywordRunes {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}
