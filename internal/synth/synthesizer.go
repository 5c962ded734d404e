// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package synth

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Synthesizer generates template-based content.
type Synthesizer struct {
	queryTemplates    map[recommend.Intent][]string
	trendingTemplates []string
	personalized      map[string][]string
	references        []categoryReferences
	topics            []categoryTopics
}

// Verify interface compliance at compile time.
var _ recommend.ContentSynthesizer = (*Synthesizer)(nil)

// New creates a Synthesizer over the built-in catalogs.
func New() *Synthesizer {
	return &Synthesizer{
		queryTemplates:    queryTemplates,
		trendingTemplates: queryTrendingTemplates,
		personalized:      personalizedTemplates,
		references:        referenceLinks,
		topics:            curatedTopics,
	}
}

// titleCase capitalizes the first letter of every run of letters and
// lower-cases the rest, so "ai/ml tools" becomes "Ai/Ml Tools".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// fill substitutes v for the single %s verb of a template.
func fill(template, v string) string {
	return strings.Replace(template, "%s", v, 1)
}

// queryParam encodes s as a query string value, spaces as '+'.
func queryParam(s string) string {
	return url.QueryEscape(s)
}

// pathSegment encodes s as a URL path segment, spaces as '-'.
func pathSegment(s string) string {
	return url.PathEscape(strings.ReplaceAll(s, " ", "-"))
}

func truncate(items []recommend.ScoredItem, limit int) []recommend.ScoredItem {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
