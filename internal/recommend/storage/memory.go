// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// BackendMemory is the Backend name reported by MemoryStore.
const BackendMemory = "memory"

// MemoryStore is an in-process store.
type MemoryStore struct {
	mu sync.RWMutex

	order        []string
	items        map[string]recommend.Item
	users        map[string]recommend.User
	interactions []recommend.Interaction
	counts       map[string]int
	byUser       map[string][]int // indexes into interactions, insertion order
}

// Verify interface compliance at compile time.
var (
	_ recommend.Store         = (*MemoryStore)(nil)
	_ recommend.StatsProvider = (*MemoryStore)(nil)
	_ recommend.Resetter      = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.reset()
	return s
}

func (s *MemoryStore) reset() {
	s.order = nil
	s.items = make(map[string]recommend.Item)
	s.users = make(map[string]recommend.User)
	s.interactions = nil
	s.counts = make(map[string]int)
	s.byUser = make(map[string][]int)
}

// UpsertItem inserts or replaces an item, keeping its original position.
//
//nolint:gocritic // hugeParam: item stored by value
func (s *MemoryStore) UpsertItem(ctx context.Context, item recommend.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ItemID]; !ok {
		s.order = append(s.order, item.ItemID)
	}
	s.items[item.ItemID] = item
	return nil
}

// GetItems returns the existing items among ids, in ids order.
func (s *MemoryStore) GetItems(ctx context.Context, ids []string) ([]recommend.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]recommend.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// AllItems returns up to limit items in insertion order.
func (s *MemoryStore) AllItems(ctx context.Context, limit int) ([]recommend.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]recommend.Item, n)
	for i := 0; i < n; i++ {
		out[i] = s.items[s.order[i]]
	}
	return out, nil
}

// PopularityRank returns items outside exclude by interaction count.
func (s *MemoryStore) PopularityRank(ctx context.Context, exclude map[string]struct{}, limit int) ([]recommend.ItemCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]recommend.ItemCount, 0, len(s.order))
	for _, id := range s.order {
		if _, skip := exclude[id]; skip {
			continue
		}
		out = append(out, recommend.ItemCount{Item: s.items[id], Count: s.counts[id]})
	}
	s.mu.RUnlock()

	return rankByCount(out, limit), nil
}

// rankByCount sorts by count descending, keeping input order on ties.
func rankByCount(items []recommend.ItemCount, limit int) []recommend.ItemCount {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// AppendInteraction records an interaction.
//
//nolint:gocritic // hugeParam: in stored by value
func (s *MemoryStore) AppendInteraction(ctx context.Context, in recommend.Interaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[in.UserID] = append(s.byUser[in.UserID], len(s.interactions))
	s.interactions = append(s.interactions, in)
	s.counts[in.ItemID]++
	return nil
}

// RecentForUser returns up to limit interactions of userID, newest first.
func (s *MemoryStore) RecentForUser(ctx context.Context, userID string, limit int) ([]recommend.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	idx := s.byUser[userID]
	out := make([]recommend.Interaction, len(idx))
	for i, n := range idx {
		// Reverse insertion order so the stable sort keeps the latest
		// insertion first among equal timestamps.
		out[len(idx)-1-i] = s.interactions[n]
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// InWindow returns interactions at or after since, oldest first.
func (s *MemoryStore) InWindow(ctx context.Context, since time.Time) ([]recommend.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	var out []recommend.Interaction
	for i := range s.interactions {
		if !s.interactions[i].Timestamp.Before(since) {
			out = append(out, s.interactions[i])
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// UpsertUser inserts or replaces a user.
//
//nolint:gocritic // hugeParam: user stored by value
func (s *MemoryStore) UpsertUser(ctx context.Context, user recommend.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

// Stats reports record counts.
func (s *MemoryStore) Stats(ctx context.Context) (recommend.StoreStats, error) {
	if err := ctx.Err(); err != nil {
		return recommend.StoreStats{Backend: BackendMemory}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return recommend.StoreStats{
		Backend:      BackendMemory,
		Items:        len(s.items),
		Users:        len(s.users),
		Interactions: len(s.interactions),
	}, nil
}

// Reset drops all records.
func (s *MemoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}
