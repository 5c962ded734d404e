// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

// Package recommend implements a search-aware recommendation engine that
// fuses interaction history, content similarity, trending activity and
// query intent into a single ranked list.
//
// # Architecture
//
// The engine is built from small components, leaves first:
//
//   - Classifier: maps a query to categories and an intent
//   - CandidateGenerator: popular unseen items for a user
//   - SimilarityRanker: TF-IDF cosine reordering against recent items
//   - TrendingAggregator: interactions x distinct users per time window
//   - ScoreQueryRelevance: literal query and keyword matching
//   - Engine: ordered fallback tiers over all of the above
//
// # Fallback Tiers
//
// Every request evaluates an ordered list of named tiers. A tier that
// errors, panics or returns nothing hands over to the next one, and the
// last tier of every chain is a static catalog:
//
//	standard:             database -> default
//	search with query:    query -> database -> default
//	search with profile:  personalized -> database -> default
//	search, no profile:   seeded -> database -> default
//	trending with query:  query-trending -> trending-fallback
//	trending:             real-time -> trending-fallback
//
// Responses therefore always hold between 1 and limit items, each tagged
// with a Source, and record the answering tier and the tiers skipped.
// Store calls are never retried.
//
// # Search Profiles
//
// UpdateProfile extracts queries from raw browser history and rebuilds the
// user's SearchIntentProfile from scratch. The new value is published with
// a single atomic pointer swap, so readers never see a partial profile and
// identical history always produces an identical profile.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cfg, store, synth.New(), logger,
//	    recommend.WithObserver(metrics.NewRecommendObserver()),
//	)
//	resp := engine.Recommend(ctx, recommend.RecommendRequest{
//	    UserID: "alice",
//	    Limit:  10,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Ranking requests share no mutable
// state; profile writers for the same user are serialized.
package recommend
