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

// Curated topic limits.
const (
	maxTopics         = 5
	mixedPerCategory  = 2
	topicTrendStep    = 10
	topicTrendInitial = 100
)

type topic struct {
	name      string
	link      string
	publisher string
}

type categoryTopics struct {
	category string
	topics   []topic
}

var curatedTopics = []categoryTopics{
	{category: "technology", topics: []topic{
		{"Python Programming", "https://www.python.org/community/workshops/", "Python.org"},
		{"Artificial Intelligence", "https://ai.google/research/", "Google AI"},
		{"Machine Learning", "https://www.tensorflow.org/learn", "TensorFlow"},
		{"Web Development", "https://developer.mozilla.org/en-US/docs/Learn", "MDN Web Docs"},
		{"Cloud Computing", "https://aws.amazon.com/getting-started/", "AWS"},
	}},
	{category: "entertainment", topics: []topic{
		{"Latest Movies", "https://www.imdb.com/chart/moviemeter/", "IMDb"},
		{"Netflix Shows", "https://www.netflix.com/browse/genre/83", "Netflix"},
		{"Streaming Content", "https://www.rottentomatoes.com/browse/tv_series_browse/sort:popular", "Rotten Tomatoes"},
		{"TV Series", "https://www.tvguide.com/news/", "TV Guide"},
		{"Movie Reviews", "https://variety.com/c/film/", "Variety"},
	}},
	{category: "shopping", topics: []topic{
		{"Best Deals", "https://www.amazon.com/gp/goldbox", "Amazon"},
		{"Product Reviews", "https://www.consumerreports.org/products/", "Consumer Reports"},
		{"Electronics", "https://www.bestbuy.com/site/electronics/top-deals/pcmcat1563299784494.c", "Best Buy"},
		{"Gadgets", "https://www.theverge.com/tech", "The Verge"},
		{"Tech Reviews", "https://www.cnet.com/reviews/", "CNET"},
	}},
	{category: "education", topics: []topic{
		{"Online Courses", "https://www.coursera.org/browse", "Coursera"},
		{"Tutorials", "https://www.khanacademy.org/", "Khan Academy"},
		{"Learning Resources", "https://www.edx.org/learn", "edX"},
		{"Certification", "https://www.udemy.com/courses/it-and-software/", "Udemy"},
		{"Programming", "https://www.codecademy.com/catalog", "Codecademy"},
	}},
	{category: "health", topics: []topic{
		{"Fitness Tips", "https://www.mayoclinic.org/healthy-lifestyle/fitness", "Mayo Clinic"},
		{"Nutrition", "https://www.nutrition.gov/", "Nutrition.gov"},
		{"Wellness", "https://www.webmd.com/fitness-exercise", "WebMD"},
		{"Exercise", "https://www.acefitness.org/resources/", "ACE Fitness"},
		{"Mental Health", "https://www.nimh.nih.gov/health/topics", "NIMH"},
	}},
	{category: "travel", topics: []topic{
		{"Travel Destinations", "https://www.lonelyplanet.com/best-in-travel", "Lonely Planet"},
		{"Vacation Spots", "https://www.tripadvisor.com/TravelersChoice", "TripAdvisor"},
		{"Hotels", "https://www.booking.com/index.html", "Booking.com"},
		{"Flights", "https://www.kayak.com/flights", "Kayak"},
		{"Travel Guides", "https://www.nationalgeographic.com/travel/", "National Geographic"},
	}},
}

// topicsFor returns the curated topics of category. An empty or unknown
// category mixes the first two topics of every category.
func (s *Synthesizer) topicsFor(category string) []topic {
	key := strings.ToLower(category)
	for _, ct := range s.topics {
		if ct.category == key {
			return ct.topics
		}
	}

	var mixed []topic
	for _, ct := range s.topics {
		mixed = append(mixed, ct.topics[:min(len(ct.topics), mixedPerCategory)]...)
	}
	return mixed
}

// CategoryTrending returns up to five curated trending topics for
// category, with trend 100 decreasing by 10 per position.
func (s *Synthesizer) CategoryTrending(category string, limit int) []recommend.ScoredItem {
	if limit <= 0 {
		return nil
	}

	itemCategory := strings.ToLower(strings.TrimSpace(category))
	if itemCategory == "" {
		itemCategory = recommend.CategoryGeneral
	}

	topics := s.topicsFor(itemCategory)
	n := min(limit, maxTopics, len(topics))
	items := make([]recommend.ScoredItem, n)
	for i := 0; i < n; i++ {
		t := topics[i]
		items[i] = recommend.ScoredItem{
			Item: recommend.Item{
				ItemID:      fmt.Sprintf("trending_%s_%d", itemCategory, i),
				Title:       "Trending: " + t.name,
				Category:    itemCategory,
				Description: fmt.Sprintf("Currently trending content about %s from %s", t.name, t.publisher),
				Features:    []string{},
			},
			Source:     recommend.SourceRealTime,
			URL:        t.link,
			SourceName: t.publisher,
		}
		items[i].SetTrend(topicTrendInitial - topicTrendStep*i)
	}
	return items
}
