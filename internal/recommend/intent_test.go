// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"reflect"
	"testing"
)

func TestClassifier_Intent(t *testing.T) {
	t.Parallel()

	c := NewClassifier(nil, nil)

	tests := []struct {
		query string
		want  Intent
	}{
		{query: "best python tutorial for beginners", want: IntentLearning},
		{query: "How to cook pasta", want: IntentLearning},
		{query: "best headphones", want: IntentRecommendation},
		{query: "buy a phone", want: IntentShopping},
		{query: "latest movies", want: IntentTrending},
		{query: "compare phones", want: IntentResearch},
		{query: "weather", want: IntentGeneral},
		{query: "", want: IntentGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tt.query).Intent; got != tt.want {
				t.Errorf("Classify(%q).Intent = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifier_Categories(t *testing.T) {
	t.Parallel()

	c := NewClassifier(nil, nil)

	tests := []struct {
		name        string
		query       string
		wantPrimary string
		wantCats    []string
	}{
		{
			name:        "programming matches by containment",
			query:       "programming",
			wantPrimary: "technology",
			wantCats:    []string{"technology"},
		},
		{
			name:        "no match is general",
			query:       "zzz qqq",
			wantPrimary: CategoryGeneral,
			wantCats:    []string{},
		},
		{
			name:        "ties break by table order",
			query:       "movie hotel",
			wantPrimary: "entertainment",
			wantCats:    []string{"entertainment", "travel"},
		},
		{
			name:        "short tokens ignored",
			query:       "ai tv",
			wantPrimary: CategoryGeneral,
			wantCats:    []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(tt.query)
			if got.PrimaryCategory != tt.wantPrimary {
				t.Errorf("PrimaryCategory = %q, want %q", got.PrimaryCategory, tt.wantPrimary)
			}
			if len(got.Categories) == 0 && len(tt.wantCats) == 0 {
				return
			}
			if !reflect.DeepEqual(got.Categories, tt.wantCats) {
				t.Errorf("Categories = %v, want %v", got.Categories, tt.wantCats)
			}
		})
	}
}

func TestClassifier_TopThree(t *testing.T) {
	t.Parallel()

	got := NewClassifier(nil, nil).Classify("python movie hotel fitness course")
	if len(got.Categories) != 3 {
		t.Fatalf("len(Categories) = %d, want 3 (%v)", len(got.Categories), got.Categories)
	}
}

func TestClassifier_DuplicateKeywordMonotonic(t *testing.T) {
	t.Parallel()

	c := NewClassifier(nil, nil)
	queries := []string{"python", "python movie", "learn python course"}

	for _, q := range queries {
		base := c.Classify(q)
		top := base.PrimaryCategory
		dup := c.Classify(q + " " + base.Keywords[0])
		if dup.Scores[top] < base.Scores[top] {
			t.Errorf("score of %q dropped from %d to %d after duplicating a keyword in %q",
				top, base.Scores[top], dup.Scores[top], q)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{in: "best python tutorial for beginners", want: []string{"best", "python", "tutorial", "for", "beginners"}},
		{in: "go is a language", want: []string{"language"}},
		{in: "python python", want: []string{"python"}},
		{in: "café crème", want: []string{"café", "crème"}},
	}

	for _, tt := range tests {
		if got := ExtractKeywords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifier_CustomTable(t *testing.T) {
	t.Parallel()

	c := NewClassifier(
		[]CategoryKeywords{{Category: "pets", Keywords: []string{"dog", "cat"}}},
		[]IntentPhrases{{Intent: IntentShopping, Phrases: []string{"adopt"}}},
	)
	got := c.Classify("adopt a dog")
	if got.PrimaryCategory != "pets" || got.Intent != IntentShopping {
		t.Errorf("Classify() = %+v, want pets/shopping", got)
	}
}
