// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

// Package storage provides the item, user and interaction stores consumed
// by the recommendation engine.
//
// # Backends
//
//   - MemoryStore: process-local maps guarded by a read-write mutex. The
//     default backend; contents are lost on restart.
//   - BadgerStore: BadgerDB key-value store with JSON values. Persists
//     items, users, interactions and search profiles across restarts.
//
// Both satisfy recommend.Store, recommend.StatsProvider and
// recommend.Resetter. BadgerStore additionally implements
// recommend.ProfileRepository and recommend.Maintainer (value log GC).
//
// # Resilience
//
// ResilientStore decorates any recommend.Store with a circuit breaker.
// Consecutive failures open the breaker, after which calls fail fast with
// recommend.ErrStoreUnavailable until the breaker half-opens. There are no
// retries: the engine's fallback chain is the recovery path.
//
// # Key Layout (BadgerStore)
//
//	item:{item_id}                  JSON item with insertion sequence
//	iseq:{seq}                      item_id, insertion order index
//	user:{user_id}                  JSON user
//	ix:{unix_nanos}:{seq}           JSON interaction, chronological
//	uix:{user_id}\x00{nanos}:{seq}  per-user index into ix:
//	ixitem:{item_id}                big-endian interaction count
//	profile:{user_id}               JSON search intent profile
//	meta:seq                        big-endian sequence counter
//
// # Ordering
//
// Item listings keep first-insertion order even when an item is replaced.
// RecentForUser returns newest first, breaking timestamp ties by most
// recent insertion. InWindow returns chronological order, breaking ties by
// insertion. Both backends produce identical orderings.
//
// # Thread Safety
//
// All stores are safe for concurrent use.
package storage
