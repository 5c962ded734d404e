// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package algorithms

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrEmptyVocabulary is returned when no document contains a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// DefaultMaxFeatures is the vocabulary cap used when none is configured.
const DefaultMaxFeatures = 100

var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// TFIDF is a term frequency / inverse document frequency vectorizer.
type TFIDF struct {
	maxFeatures int
	stopWords   map[string]struct{}
}

// Matrix holds one weight row per fitted document. Columns follow
// Vocabulary, which is sorted alphabetically.
type Matrix struct {
	Vocabulary []string
	Rows       [][]float64
}

// NewTFIDF creates a vectorizer with the English stop word list.
func NewTFIDF(maxFeatures int) *TFIDF {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &TFIDF{
		maxFeatures: maxFeatures,
		stopWords:   EnglishStopWords,
	}
}

// Tokenize lowercases text and returns its terms in order, dropping
// single-character tokens and stop words.
func (v *TFIDF) Tokenize(text string) []string {
	raw := termPattern.FindAllString(strings.ToLower(text), -1)
	terms := raw[:0]
	for _, t := range raw {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		if _, stop := v.stopWords[t]; stop {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}

// FitTransform learns the vocabulary and idf weights from docs and returns
// their L2-normalized TF-IDF rows.
func (v *TFIDF) FitTransform(docs []string) (*Matrix, error) {
	counts := make([]map[string]int, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, term := range v.Tokenize(doc) {
			tf[term]++
		}
		for term, c := range tf {
			corpusFreq[term] += c
			docFreq[term]++
		}
		counts[i] = tf
	}

	if len(corpusFreq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := v.selectVocabulary(corpusFreq)
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, tf := range counts {
		row := make([]float64, len(vocab))
		for term, c := range tf {
			if j, ok := index[term]; ok {
				row[j] = float64(c) * idf[j]
			}
		}
		l2Normalize(row)
		rows[i] = row
	}

	return &Matrix{Vocabulary: vocab, Rows: rows}, nil
}

// selectVocabulary keeps the maxFeatures most frequent terms, breaking ties
// alphabetically, and returns them in alphabetical order.
func (v *TFIDF) selectVocabulary(corpusFreq map[string]int) []string {
	terms := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if len(terms) > v.maxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		})
		terms = terms[:v.maxFeatures]
		sort.Strings(terms)
	}
	return terms
}
