// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"strings"
	"unicode/utf8"
)

// Query relevance weights.
const (
	relevanceBase         = 0.3
	relevanceFullQuery    = 0.5
	relevancePerKeyword   = 0.1
	relevancePerQueryWord = 0.05

	// minQueryWordRunes is the exclusive lower bound on query word length.
	minQueryWordRunes = 3
)

// ScoreQueryRelevance scores item against a literal query and its
// keywords. The result is in [0.3, 1.0].
//
// Keyword hits and query word hits are counted independently, so a term
// that is both a keyword and a long query word earns both bonuses.
//
//nolint:gocritic // hugeParam: item passed by value, scoring is read-only
func ScoreQueryRelevance(item Item, query string, keywords []string) float64 {
	text := item.Text()
	q := strings.ToLower(query)

	score := relevanceBase
	if strings.Contains(text, q) {
		score += relevanceFullQuery
	}

	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += relevancePerKeyword
		}
	}

	for _, word := range strings.Fields(q) {
		if utf8.RuneCountInString(word) > minQueryWordRunes && strings.Contains(text, word) {
			score += relevancePerQueryWord
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
