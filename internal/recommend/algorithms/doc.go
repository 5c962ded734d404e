// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

// Package algorithms implements the vector-space text math used by the
// content similarity ranker.
//
// # TF-IDF
//
// TFIDF turns a small corpus of descriptions into L2-normalized term
// weight rows:
//
//   - Lowercase, tokens of two or more word characters
//   - English stop words removed
//   - Vocabulary capped to the most frequent terms (ties alphabetical)
//   - Smoothed inverse document frequency: ln((1+n)/(1+df)) + 1
//
// The vectorizer is fitted per request on a handful of documents, so it
// keeps no state between calls and is safe for concurrent use.
//
// # Vectors
//
// Mean and Cosine operate on dense float64 slices of equal length.
//
// # Usage
//
//	v := algorithms.NewTFIDF(100)
//	m, err := v.FitTransform(docs)
//	if errors.Is(err, algorithms.ErrEmptyVocabulary) {
//	    // nothing to rank on
//	}
//	ref := algorithms.Mean(m.Rows[:n])
//	score := algorithms.Cosine(ref, m.Rows[n])
package algorithms
