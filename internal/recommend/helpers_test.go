// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// fakeStore is an in-memory Store with per-operation error injection.
type fakeStore struct {
	mu           sync.Mutex
	order        []string
	items        map[string]Item
	interactions []Interaction
	users        map[string]User

	err      error // returned by every read when set
	panicMsg string
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]Item), users: make(map[string]User)}
}

func (s *fakeStore) check() error {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.err
}

func (s *fakeStore) UpsertItem(_ context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ItemID]; !ok {
		s.order = append(s.order, item.ItemID)
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *fakeStore) GetItems(_ context.Context, ids []string) ([]Item, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Item
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeStore) AllItems(_ context.Context, limit int) ([]Item, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Item
	for _, id := range s.order {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *fakeStore) PopularityRank(_ context.Context, exclude map[string]struct{}, limit int) ([]ItemCount, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int)
	for _, in := range s.interactions {
		counts[in.ItemID]++
	}
	var out []ItemCount
	for _, id := range s.order {
		if _, skip := exclude[id]; skip {
			continue
		}
		out = append(out, ItemCount{Item: s.items[id], Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) AppendInteraction(_ context.Context, in Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = append(s.interactions, in)
	return nil
}

func (s *fakeStore) RecentForUser(_ context.Context, userID string, limit int) ([]Interaction, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Interaction
	for i := len(s.interactions) - 1; i >= 0; i-- {
		if s.interactions[i].UserID == userID {
			out = append(out, s.interactions[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) InWindow(_ context.Context, since time.Time) ([]Interaction, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Interaction
	for _, in := range s.interactions {
		if !in.Timestamp.Before(since) {
			out = append(out, in)
		}
	}
	return out, nil
}

func (s *fakeStore) UpsertUser(_ context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

func (s *fakeStore) Stats(_ context.Context) (StoreStats, error) {
	if s.err != nil {
		return StoreStats{Backend: "fake"}, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return StoreStats{Backend: "fake", Items: len(s.items), Users: len(s.users), Interactions: len(s.interactions)}, nil
}

func (s *fakeStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.items = make(map[string]Item)
	s.users = make(map[string]User)
	s.interactions = nil
	return nil
}

// fakeSynth is a deterministic ContentSynthesizer.
type fakeSynth struct {
	empty bool
	panic bool

	// bareTrending drops trend scores and sources from CategoryTrending.
	bareTrending bool
}

func (f *fakeSynth) make(prefix string, n int, source Source, title func(i int) string) []ScoredItem {
	if f.panic {
		panic("synthesizer failure")
	}
	if f.empty || n <= 0 {
		return nil
	}
	out := make([]ScoredItem, n)
	for i := range out {
		out[i] = ScoredItem{
			Item:   Item{ItemID: fmt.Sprintf("%s_%d", prefix, i), Title: title(i), Category: CategoryGeneral},
			Source: source,
		}
	}
	return out
}

func (f *fakeSynth) QueryRecommendations(a Analysis, limit int) []ScoredItem {
	items := f.make("query_rec", min(limit, 5), SourceQuery, func(i int) string {
		if i == 0 {
			return "unrelated title"
		}
		return "About " + a.Query
	})
	for i := range items {
		items[i].Intent = a.Intent
	}
	return items
}

func (f *fakeSynth) QueryTrending(a Analysis, limit int) []ScoredItem {
	items := f.make("query_trending", min(limit, 10), SourceTrending, func(int) string { return "Trending " + a.Query })
	for i := range items {
		items[i].SetTrend(100 - 5*i)
	}
	return items
}

func (f *fakeSynth) Personalized(keywords, categories []string, limit int) []ScoredItem {
	items := f.make("personalized", min(limit, len(categories)*3+len(keywords)), SourcePersonalized, func(i int) string {
		return fmt.Sprintf("Personalized %d", i)
	})
	for i := range items {
		items[i].SetRelevance(0.9 - 0.1*float64(i))
	}
	return items
}

func (f *fakeSynth) CategoryTrending(category string, limit int) []ScoredItem {
	items := f.make("trending_"+category, min(limit, 5), SourceRealTime, func(i int) string {
		return fmt.Sprintf("Trending topic %d", i)
	})
	for i := range items {
		if f.bareTrending {
			items[i].Source = ""
			continue
		}
		items[i].SetTrend(100 - 10*i)
	}
	return items
}

func (f *fakeSynth) Suggestions(partial string, limit int) []string {
	if len(partial) <= 2 {
		return nil
	}
	return []string{"best " + partial, partial + " tutorial"}
}

// recordingObserver counts engine events.
type recordingObserver struct {
	mu        sync.Mutex
	requests  []string
	fallbacks []string
	profiles  int
	cached    int
}

func (o *recordingObserver) ObserveRequest(mode Mode, tier string, _ int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, string(mode)+":"+tier)
}

func (o *recordingObserver) ObserveFallback(_ Mode, tier string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fallbacks = append(o.fallbacks, tier)
}

func (o *recordingObserver) ObserveProfileUpdate(_, profiles int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.profiles = profiles
}

func (o *recordingObserver) ObserveClassification(_ Intent, cached bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if cached {
		o.cached++
	}
}

// mapCache is a minimal AnalysisCache.
type mapCache struct {
	mu sync.Mutex
	m  map[string]Analysis
}

func (c *mapCache) Get(key string) (Analysis, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.m[key]
	return a, ok
}

func (c *mapCache) Add(key string, a Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[string]Analysis)
	}
	c.m[key] = a
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T { return &v }
