// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package synth

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "python machine learning", want: "Python Machine Learning"},
		{in: "SCI-FI movies", want: "Sci-Fi Movies"},
		{in: "ai/ml tools", want: "Ai/Ml Tools"},
		{in: "2024abc", want: "2024Abc"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQueryRecommendations(t *testing.T) {
	t.Parallel()

	s := New()
	a := recommend.NewClassifier(nil, nil).Classify("learn python programming")

	got := s.QueryRecommendations(a, 10)
	if len(got) != 5 {
		t.Fatalf("len(QueryRecommendations) = %d, want 5", len(got))
	}

	wantTitles := []string{
		"How to Learn Learn Python Programming",
		"Learn Python Programming Tutorial for Beginners",
		"Complete Learn Python Programming Guide",
		"Learn Python Programming Step-by-Step Course",
		"Master Learn Python Programming Skills",
	}
	for i, item := range got {
		item := item
		if item.Title != wantTitles[i] {
			t.Errorf("title[%d] = %q, want %q", i, item.Title, wantTitles[i])
		}
		if item.Source != recommend.SourceQuery || item.Intent != recommend.IntentLearning {
			t.Errorf("item[%d] source/intent = %s/%s", i, item.Source, item.Intent)
		}
		if item.URL != "https://www.coursera.org/search?query=learn+python+programming" {
			t.Errorf("url[%d] = %q", i, item.URL)
		}
		want := 0.95 - 0.05*float64(i)
		if diff := item.Relevance() - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("relevance[%d] = %v, want %v", i, item.Relevance(), want)
		}
	}

	if got := s.QueryRecommendations(a, 2); len(got) != 2 {
		t.Errorf("len(limit 2) = %d, want 2", len(got))
	}
	if got := s.QueryRecommendations(recommend.Analysis{}, 5); got != nil {
		t.Errorf("empty query = %v, want nil", got)
	}
}

func TestQueryRecommendations_UnknownIntentUsesGeneral(t *testing.T) {
	t.Parallel()

	got := New().QueryRecommendations(recommend.Analysis{Query: "x", Intent: "other"}, 1)
	if len(got) != 1 || got[0].Title != "Everything About X" {
		t.Errorf("QueryRecommendations(unknown intent) = %+v", got)
	}
	if got[0].URL != "https://www.google.com/search?q=x" || got[0].Category != recommend.CategoryGeneral {
		t.Errorf("url/category = %q/%q", got[0].URL, got[0].Category)
	}
}

func TestQueryTrending(t *testing.T) {
	t.Parallel()

	got := New().QueryTrending(recommend.Analysis{Query: "ai news", Intent: recommend.IntentGeneral}, 20)
	if len(got) != 10 {
		t.Fatalf("len(QueryTrending) = %d, want 10", len(got))
	}

	wantURLs := map[int]string{
		0: "https://news.google.com/search?q=ai+news",
		1: "https://news.google.com/search?q=ai+news", // title contains the query
		4: "https://news.google.com/search?q=ai+news",
	}
	for i, want := range wantURLs {
		if got[i].URL != want {
			t.Errorf("url[%d] = %q, want %q", i, got[i].URL, want)
		}
	}
	for i, item := range got {
		item := item
		if item.Trend() != 100-5*i || item.Source != recommend.SourceTrending {
			t.Errorf("item[%d] trend/source = %d/%s", i, item.Trend(), item.Source)
		}
	}
}

func TestTrendingURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{title: "Trending: Go News", want: "https://news.google.com/search?q=go"},
		{title: "Go Social Media Buzz", want: "https://twitter.com/search?q=go"},
		{title: "Popular Go Discussions", want: "https://www.reddit.com/search/?q=go"},
		{title: "Hot Go Topics", want: "https://trends.google.com/trends/explore?q=go"},
	}
	for _, tt := range tests {
		if got := trendingURL("go", tt.title); got != tt.want {
			t.Errorf("trendingURL(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestPersonalized(t *testing.T) {
	t.Parallel()

	s := New()
	keywords := []string{"python", "cheap flights"}
	categories := []string{"technology", "travel", "health", "shopping"}

	got := s.Personalized(keywords, categories, 100)

	// 3 categories x 3 templates + 2 keywords.
	if len(got) != 11 {
		t.Fatalf("len(Personalized) = %d, want 11", len(got))
	}

	first := got[0]
	if first.ItemID != "personalized_technology_0" || first.Title != "Advanced Python Tutorial" {
		t.Errorf("first = %s %q", first.ItemID, first.Title)
	}
	if first.URL != "https://docs.python.org/3/tutorial/" || first.SourceName != "Technology Resource" {
		t.Errorf("first url/source = %q/%q", first.URL, first.SourceName)
	}

	second := got[1]
	if second.Title != "Best Cheap Flights Tools 2024" || second.URL != "https://stackoverflow.com/questions/tagged/" {
		t.Errorf("second = %q %q", second.Title, second.URL)
	}

	travel := got[4]
	if travel.ItemID != "personalized_travel_1" || travel.URL != "https://www.kayak.com/" {
		t.Errorf("travel[1] = %s %q", travel.ItemID, travel.URL)
	}

	for i := 0; i < 9; i++ {
		want := 0.8 - 0.1*float64(i%3)
		if diff := got[i].Relevance() - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("relevance[%d] = %v, want %v", i, got[i].Relevance(), want)
		}
	}

	kw := got[9]
	if kw.ItemID != "keyword_0" || kw.Title != "Everything About Python" || kw.Relevance() != 0.9 {
		t.Errorf("keyword item = %+v", kw)
	}
	if kw.Category != "technology" {
		t.Errorf("keyword category = %q, want technology", kw.Category)
	}
	// "cheap flights" is not a substring of any key list, so it lands in
	// technology.
	if got[10].Category != "technology" {
		t.Errorf("second keyword category = %q", got[10].Category)
	}

	for _, item := range got {
		if item.Source != recommend.SourcePersonalized {
			t.Errorf("%s source = %q", item.ItemID, item.Source)
		}
	}
}

func TestPersonalized_Limits(t *testing.T) {
	t.Parallel()

	s := New()

	if got := s.Personalized([]string{"a"}, []string{"travel"}, 0); got != nil {
		t.Errorf("limit 0 = %v, want nil", got)
	}
	if got := s.Personalized(nil, nil, 10); len(got) != 0 {
		t.Errorf("no inputs = %v, want empty", got)
	}

	many := []string{"a", "b", "c", "d", "e", "f", "g"}
	if got := s.Personalized(many, nil, 100); len(got) != 5 {
		t.Errorf("len(keywords only) = %d, want 5", len(got))
	}

	got := s.Personalized(nil, []string{"general"}, 100)
	if len(got) != 3 || got[0].Title != "Advanced General Tutorial" {
		t.Errorf("unknown category = %+v", got)
	}
}

func TestLinkFor(t *testing.T) {
	t.Parallel()

	s := New()
	tests := []struct {
		category, keyword, want string
	}{
		{"travel", "hotels", "https://www.booking.com/"},
		{"travel", "cheap hotels paris", "https://www.booking.com/"},
		{"travel", "hotel", "https://www.booking.com/"},
		{"travel", "museums", "https://www.expedia.com/"},
		{"unknown", "python", "https://docs.python.org/3/tutorial/"},
		{"entertainment", "SCI FI classics", "https://www.imdb.com/list/ls000634298/"},
	}
	for _, tt := range tests {
		if got := s.linkFor(tt.category, tt.keyword); got != tt.want {
			t.Errorf("linkFor(%q, %q) = %q, want %q", tt.category, tt.keyword, got, tt.want)
		}
	}
}

func TestCategoryTrending(t *testing.T) {
	t.Parallel()

	s := New()

	got := s.CategoryTrending("Health", 10)
	if len(got) != 5 {
		t.Fatalf("len(CategoryTrending(health)) = %d, want 5", len(got))
	}
	if got[0].ItemID != "trending_health_0" || got[0].Title != "Trending: Fitness Tips" || got[0].SourceName != "Mayo Clinic" {
		t.Errorf("first = %+v", got[0])
	}
	for i, item := range got {
		item := item
		if item.Trend() != 100-10*i || item.Source != recommend.SourceRealTime || item.Category != "health" {
			t.Errorf("item[%d] = %d/%s/%s", i, item.Trend(), item.Source, item.Category)
		}
	}

	mixed := s.CategoryTrending("", 10)
	var titles []string
	for _, item := range mixed {
		titles = append(titles, item.Title)
	}
	want := []string{
		"Trending: Python Programming",
		"Trending: Artificial Intelligence",
		"Trending: Latest Movies",
		"Trending: Netflix Shows",
		"Trending: Best Deals",
	}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("mixed titles = %v, want %v", titles, want)
	}
	if mixed[0].Category != recommend.CategoryGeneral || mixed[0].ItemID != "trending_general_0" {
		t.Errorf("mixed category/id = %q/%q", mixed[0].Category, mixed[0].ItemID)
	}

	if got := s.CategoryTrending("travel", 2); len(got) != 2 {
		t.Errorf("len(limit 2) = %d, want 2", len(got))
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	s := New()

	tests := []struct {
		partial string
		limit   int
		want    []string
	}{
		{partial: "py", limit: 5, want: nil},
		{partial: "pyt", limit: 5, want: []string{"best pyt 2024", "how to learn pyt", "pyt tutorial", "pyt python programming"}},
		{partial: "Hotels", limit: 10, want: []string{"best Hotels 2024", "how to learn Hotels", "Hotels tutorial", "Hotels hotels"}},
		{partial: "learning", limit: 2, want: []string{"best learning 2024", "how to learn learning"}},
	}
	for _, tt := range tests {
		got := s.Suggestions(tt.partial, tt.limit)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Suggestions(%q, %d) = %v, want %v", tt.partial, tt.limit, got, tt.want)
		}
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	s := New()
	a := recommend.Analysis{Query: "best laptop", Intent: recommend.IntentRecommendation}

	if !reflect.DeepEqual(s.QueryRecommendations(a, 5), s.QueryRecommendations(a, 5)) {
		t.Error("QueryRecommendations is not deterministic")
	}
	if !reflect.DeepEqual(s.Personalized([]string{"x"}, []string{"travel"}, 5), s.Personalized([]string{"x"}, []string{"travel"}, 5)) {
		t.Error("Personalized is not deterministic")
	}
	for _, item := range s.QueryRecommendations(a, 5) {
		if !strings.Contains(item.Title, "Best Laptop") {
			t.Errorf("title %q does not contain the title-cased query", item.Title)
		}
	}
}
