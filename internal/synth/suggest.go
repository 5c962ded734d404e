// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package synth

import (
	"strings"
	"unicode/utf8"
)

// minSuggestRunes is the exclusive lower bound on partial query length.
const minSuggestRunes = 2

// suggestionTemplates are applied to every partial query.
var suggestionTemplates = []string{
	"best %s 2024",
	"how to learn %s",
	"%s tutorial",
}

// suggestionPhrases are appended when they contain, or are contained in,
// the partial query. Order is significant.
var suggestionPhrases = [][]string{
	{"python programming", "web development", "machine learning", "javascript"},
	{"netflix shows", "latest movies", "streaming services", "gaming"},
	{"best deals", "product reviews", "electronics", "gadgets"},
	{"online courses", "tutorials", "certifications", "learning"},
	{"fitness tips", "nutrition", "workout plans", "wellness"},
	{"destinations", "travel guides", "hotels", "flights"},
}

// Suggestions completes partial. Inputs of two characters or fewer
// yield nothing.
func (s *Synthesizer) Suggestions(partial string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(partial) <= minSuggestRunes {
		return nil
	}

	out := make([]string, 0, limit)
	for _, t := range suggestionTemplates {
		out = append(out, fill(t, partial))
	}

	lower := strings.ToLower(partial)
	for _, phrases := range suggestionPhrases {
		for _, p := range phrases {
			if strings.Contains(p, lower) || strings.Contains(lower, p) {
				out = append(out, partial+" "+p)
			}
		}
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
