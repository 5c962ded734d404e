// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package cache provides a thread-safe, generic LRU cache with TTL support.

The engine memoizes query analyses in an LRU so that repeated queries skip
classification. Classification is a pure function of the query text, so a
cached entry is never stale; the TTL only bounds memory held by queries
that stop arriving.

# Usage Example

	c := cache.NewLRU[recommend.Analysis](5000, 10*time.Minute)
	engine, err := recommend.NewEngine(cfg, store, synth, logger,
	    recommend.WithAnalysisCache(c))

	// Periodically, e.g. from a maintenance service:
	_ = c.Maintain(ctx)

# Eviction

Entries expire lazily on Get and eagerly on CleanupExpired/Maintain. When
the cache is at capacity, Add evicts the least recently used entry.

# Thread Safety

All methods are safe for concurrent use. Get mutates recency order, so the
cache uses a single mutex rather than a read-write lock.
*/
package cache
