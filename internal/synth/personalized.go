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

// Personalized content limits.
const (
	maxPersonalizedCategories = 3
	templatesPerCategory      = 3
	maxKeywordItems           = 5

	keywordRelevance = 0.9
)

// fallbackCategory supplies templates and links for categories without
// their own.
const fallbackCategory = "technology"

var personalizedTemplates = map[string][]string{
	"technology": {
		"Advanced %s Tutorial",
		"Best %s Tools 2024",
		"%s for Beginners",
		"Latest %s Trends",
		"%s Best Practices",
	},
	"entertainment": {
		"Top %s Movies",
		"Best %s Shows",
		"%s Recommendations",
		"Latest %s Reviews",
		"Popular %s Content",
	},
	"shopping": {
		"Best %s Deals",
		"%s Product Reviews",
		"Top %s Brands",
		"%s Buying Guide",
		"Cheap %s Options",
	},
	"education": {
		"%s Online Course",
		"Learn %s Fast",
		"%s Certification",
		"%s Study Guide",
		"Free %s Resources",
	},
	"health": {
		"%s Health Tips",
		"%s Workout Plan",
		"%s Diet Guide",
		"%s Benefits",
		"%s Exercise Routine",
	},
	"travel": {
		"Best %s Destinations",
		"%s Travel Guide",
		"%s Vacation Spots",
		"%s Hotels",
		"%s Travel Tips",
	},
}

type reference struct {
	key  string
	link string
}

// categoryReferences is the ordered link table of one category. Order
// decides partial matches.
type categoryReferences struct {
	category string
	links    []reference
	fallback string
}

var referenceLinks = []categoryReferences{
	{category: "technology", fallback: "https://stackoverflow.com/questions/tagged/", links: []reference{
		{"python", "https://docs.python.org/3/tutorial/"},
		{"javascript", "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide"},
		{"machine learning", "https://scikit-learn.org/stable/tutorial/"},
		{"web development", "https://www.freecodecamp.org/learn/"},
		{"artificial intelligence", "https://ai.google/education/"},
		{"programming", "https://www.codecademy.com/"},
	}},
	{category: "entertainment", fallback: "https://entertainment.com/", links: []reference{
		{"movies", "https://www.imdb.com/chart/top/"},
		{"netflix", "https://www.netflix.com/browse"},
		{"tv shows", "https://www.tvguide.com/"},
		{"streaming", "https://www.rottentomatoes.com/"},
		{"sci fi", "https://www.imdb.com/list/ls000634298/"},
	}},
	{category: "shopping", fallback: "https://www.amazon.com/", links: []reference{
		{"headphones", "https://www.amazon.com/s?k=wireless+headphones"},
		{"electronics", "https://www.bestbuy.com/site/electronics/"},
		{"deals", "https://slickdeals.net/"},
		{"reviews", "https://www.consumerreports.org/"},
		{"gadgets", "https://www.theverge.com/tech"},
	}},
	{category: "education", fallback: "https://www.coursera.org/", links: []reference{
		{"courses", "https://www.coursera.org/"},
		{"tutorials", "https://www.khanacademy.org/"},
		{"learning", "https://www.edx.org/"},
		{"certification", "https://www.udemy.com/"},
		{"programming", "https://www.codecademy.com/"},
	}},
	{category: "health", fallback: "https://www.healthline.com/", links: []reference{
		{"fitness", "https://www.mayoclinic.org/healthy-lifestyle/fitness"},
		{"nutrition", "https://www.nutrition.gov/"},
		{"exercise", "https://www.acefitness.org/"},
		{"wellness", "https://www.webmd.com/"},
		{"diet", "https://www.eatright.org/"},
	}},
	{category: "travel", fallback: "https://www.expedia.com/", links: []reference{
		{"destinations", "https://www.lonelyplanet.com/"},
		{"hotels", "https://www.booking.com/"},
		{"flights", "https://www.kayak.com/"},
		{"vacation", "https://www.tripadvisor.com/"},
		{"travel guide", "https://www.nationalgeographic.com/travel/"},
	}},
}

// referencesFor returns the link table of category, falling back to the
// technology table.
func (s *Synthesizer) referencesFor(category string) categoryReferences {
	var fallback categoryReferences
	for _, r := range s.references {
		if r.category == category {
			return r
		}
		if r.category == fallbackCategory {
			fallback = r
		}
	}
	return fallback
}

// linkFor resolves a reference link for keyword within category: an exact
// key match, then the first key contained in or containing the keyword,
// then the category default.
func (s *Synthesizer) linkFor(category, keyword string) string {
	refs := s.referencesFor(category)
	kw := strings.ToLower(keyword)

	for _, r := range refs.links {
		if r.key == kw {
			return r.link
		}
	}
	for _, r := range refs.links {
		if strings.Contains(kw, r.key) || strings.Contains(r.key, kw) {
			return r.link
		}
	}
	if refs.fallback != "" {
		return refs.fallback
	}
	return "https://www.google.com/search?q=" + queryParam(keyword)
}

// keywordCategory returns the first category whose link keys mention
// keyword, or the technology category.
func (s *Synthesizer) keywordCategory(keyword string) string {
	kw := strings.ToLower(keyword)
	for _, r := range s.references {
		keys := make([]string, len(r.links))
		for i, l := range r.links {
			keys[i] = l.key
		}
		if strings.Contains(strings.Join(keys, " "), kw) {
			return r.category
		}
	}
	return fallbackCategory
}

// Personalized returns items built from search keywords and categories:
// three per category for the first three categories, then one per keyword
// for the first five keywords.
func (s *Synthesizer) Personalized(keywords, categories []string, limit int) []recommend.ScoredItem {
	if limit <= 0 {
		return nil
	}

	var items []recommend.ScoredItem

	for _, category := range categories[:min(len(categories), maxPersonalizedCategories)] {
		templates, ok := s.personalized[category]
		if !ok {
			templates = s.personalized[fallbackCategory]
		}
		categoryTitle := titleCase(category)

		for i, template := range templates[:min(len(templates), templatesPerCategory)] {
			keyword := category
			if len(keywords) > 0 {
				keyword = keywords[i%len(keywords)]
			}

			item := recommend.ScoredItem{
				Item: recommend.Item{
					ItemID:      fmt.Sprintf("personalized_%s_%d", category, i),
					Title:       fill(template, titleCase(keyword)),
					Category:    category,
					Description: fmt.Sprintf("Personalized content about %s in %s", keyword, category),
					Features:    []string{},
				},
				Source:     recommend.SourcePersonalized,
				URL:        s.linkFor(category, keyword),
				SourceName: categoryTitle + " Resource",
			}
			item.SetRelevance(0.8 - 0.1*float64(i))
			items = append(items, item)
		}
	}

	for i, keyword := range keywords[:min(len(keywords), maxKeywordItems)] {
		category := s.keywordCategory(keyword)
		keywordTitle := titleCase(keyword)

		item := recommend.ScoredItem{
			Item: recommend.Item{
				ItemID:      fmt.Sprintf("keyword_%d", i),
				Title:       "Everything About " + keywordTitle,
				Category:    category,
				Description: fmt.Sprintf("Comprehensive guide and latest updates about %s", keyword),
				Features:    []string{},
			},
			Source:     recommend.SourcePersonalized,
			URL:        s.linkFor(category, keyword),
			SourceName: keywordTitle + " Resources",
		}
		item.SetRelevance(keywordRelevance)
		items = append(items, item)
	}

	return truncate(items, limit)
}
