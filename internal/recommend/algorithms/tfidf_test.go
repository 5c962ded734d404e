// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package algorithms

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTFIDF_Tokenize(t *testing.T) {
	t.Parallel()

	v := NewTFIDF(0)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "lowercases", text: "Python Machine Learning", want: []string{"python", "machine", "learning"}},
		{name: "drops stop words", text: "the best of the web", want: []string{"best", "web"}},
		{name: "drops single characters", text: "a b cd", want: []string{"cd"}},
		{name: "punctuation splits", text: "full-stack, development!", want: []string{"stack", "development"}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := v.Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTFIDF_EmptyVocabulary(t *testing.T) {
	t.Parallel()

	v := NewTFIDF(100)
	_, err := v.FitTransform([]string{"the and of", ""})
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("FitTransform() error = %v, want ErrEmptyVocabulary", err)
	}
}

func TestTFIDF_RowsAreUnitLength(t *testing.T) {
	t.Parallel()

	v := NewTFIDF(100)
	m, err := v.FitTransform([]string{"python machine learning", "python tutorial", "cooking recipes"})
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if len(m.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(m.Rows))
	}
	for i, row := range m.Rows {
		var sum float64
		for _, x := range row {
			sum += x * x
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d squared norm = %v, want 1", i, sum)
		}
	}

	wantVocab := []string{"cooking", "learning", "machine", "python", "recipes", "tutorial"}
	if !reflect.DeepEqual(m.Vocabulary, wantVocab) {
		t.Errorf("Vocabulary = %v, want %v", m.Vocabulary, wantVocab)
	}
}

func TestTFIDF_MaxFeatures(t *testing.T) {
	t.Parallel()

	v := NewTFIDF(2)
	m, err := v.FitTransform([]string{"alpha alpha beta", "alpha gamma gamma gamma", "delta"})
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	want := []string{"alpha", "gamma"}
	if !reflect.DeepEqual(m.Vocabulary, want) {
		t.Errorf("Vocabulary = %v, want %v", m.Vocabulary, want)
	}

	// "delta" is outside the vocabulary, so its row is all zeros.
	for _, x := range m.Rows[2] {
		if x != 0 {
			t.Errorf("row for out-of-vocabulary doc = %v, want zeros", m.Rows[2])
			break
		}
	}
}

func TestTFIDF_SimilarityOrdering(t *testing.T) {
	t.Parallel()

	v := NewTFIDF(100)
	m, err := v.FitTransform([]string{"python machine learning", "python tutorial", "cooking recipes"})
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	ref := Mean(m.Rows[:1])
	related := Cosine(ref, m.Rows[1])
	unrelated := Cosine(ref, m.Rows[2])

	if related <= unrelated {
		t.Errorf("Cosine(related) = %v, Cosine(unrelated) = %v, want related > unrelated", related, unrelated)
	}
	if unrelated != 0 {
		t.Errorf("Cosine(unrelated) = %v, want 0", unrelated)
	}
}

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 2}, b: []float64{1, 2}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 1}, want: 0},
		{name: "length mismatch", a: []float64{1}, b: []float64{1, 1}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	t.Parallel()

	got := Mean([][]float64{{1, 2}, {3, 4}})
	want := []float64{2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Mean() = %v, want %v", got, want)
	}

	if Mean(nil) != nil {
		t.Error("Mean(nil) should be nil")
	}
}
