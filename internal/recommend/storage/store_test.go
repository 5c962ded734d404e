// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package storage

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// testStore is the surface shared by every backend.
type testStore interface {
	recommend.Store
	recommend.StatsProvider
	recommend.Resetter
}

func newTestBadger(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadgerStore(BadgerOptions{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var backends = []struct {
	name string
	open func(t *testing.T) testStore
}{
	{name: BackendMemory, open: func(*testing.T) testStore { return NewMemoryStore() }},
	{name: BackendBadger, open: func(t *testing.T) testStore { return newTestBadger(t) }},
	{name: "resilient", open: func(t *testing.T) testStore {
		return NewResilientStore(newTestBadger(t), DefaultBreakerConfig())
	}},
}

// forEachBackend runs fn against a fresh store of every backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, s testStore)) {
	t.Helper()
	for _, b := range backends {
		b := b
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			fn(t, b.open(t))
		})
	}
}

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func itemIDs(items []recommend.Item) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ItemID
	}
	return ids
}

func countIDs(items []recommend.ItemCount) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = fmt.Sprintf("%s:%d", items[i].Item.ItemID, items[i].Count)
	}
	return ids
}

func mustUpsert(t *testing.T, s testStore, ids ...string) {
	t.Helper()
	for _, id := range ids {
		item := recommend.Item{ItemID: id, Title: "Title " + id, Category: "technology", Features: []string{"f"}}
		if err := s.UpsertItem(context.Background(), item); err != nil {
			t.Fatalf("UpsertItem(%s) error = %v", id, err)
		}
	}
}

func mustInteract(t *testing.T, s testStore, user, item string, at time.Time) {
	t.Helper()
	in := recommend.Interaction{UserID: user, ItemID: item, Type: recommend.InteractionView, Timestamp: at}
	if err := s.AppendInteraction(context.Background(), in); err != nil {
		t.Fatalf("AppendInteraction() error = %v", err)
	}
}

func TestStore_Items(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx := context.Background()
		mustUpsert(t, s, "c", "a", "b")

		// Replacing keeps the original position.
		updated := recommend.Item{ItemID: "c", Title: "Renamed", Category: "health"}
		if err := s.UpsertItem(ctx, updated); err != nil {
			t.Fatalf("UpsertItem() error = %v", err)
		}

		all, err := s.AllItems(ctx, 0)
		if err != nil {
			t.Fatalf("AllItems() error = %v", err)
		}
		if got := itemIDs(all); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
			t.Errorf("AllItems() = %v, want [c a b]", got)
		}
		if all[0].Title != "Renamed" || all[0].Category != "health" {
			t.Errorf("AllItems()[0] = %+v, want replaced item", all[0])
		}

		limited, _ := s.AllItems(ctx, 2)
		if got := itemIDs(limited); !reflect.DeepEqual(got, []string{"c", "a"}) {
			t.Errorf("AllItems(2) = %v, want [c a]", got)
		}

		got, err := s.GetItems(ctx, []string{"b", "missing", "a"})
		if err != nil {
			t.Fatalf("GetItems() error = %v", err)
		}
		if ids := itemIDs(got); !reflect.DeepEqual(ids, []string{"b", "a"}) {
			t.Errorf("GetItems() = %v, want [b a]", ids)
		}
		if got[0].Title != "Title b" || !reflect.DeepEqual(got[0].Features, []string{"f"}) {
			t.Errorf("GetItems()[0] = %+v, fields not preserved", got[0])
		}
	})
}

func TestStore_PopularityRank(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx := context.Background()
		mustUpsert(t, s, "a", "b", "c", "d")
		mustInteract(t, s, "u1", "c", base)
		mustInteract(t, s, "u2", "c", base)
		mustInteract(t, s, "u1", "b", base)
		mustInteract(t, s, "u1", "d", base)
		mustInteract(t, s, "u1", "ghost", base) // not in the catalog

		tests := []struct {
			name    string
			exclude map[string]struct{}
			limit   int
			want    []string
		}{
			{name: "all", limit: 0, want: []string{"c:2", "b:1", "d:1", "a:0"}},
			{name: "limited", limit: 2, want: []string{"c:2", "b:1"}},
			{name: "excluded", exclude: map[string]struct{}{"c": {}, "a": {}}, limit: 10, want: []string{"b:1", "d:1"}},
		}
		for _, tt := range tests {
			got, err := s.PopularityRank(ctx, tt.exclude, tt.limit)
			if err != nil {
				t.Fatalf("%s: PopularityRank() error = %v", tt.name, err)
			}
			if ids := countIDs(got); !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("%s: PopularityRank() = %v, want %v", tt.name, ids, tt.want)
			}
		}
	})
}

func TestStore_RecentForUser(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx := context.Background()
		mustInteract(t, s, "alice", "old", base.Add(-time.Hour))
		mustInteract(t, s, "alice", "new", base.Add(time.Hour))
		mustInteract(t, s, "bob", "other", base.Add(2*time.Hour))
		mustInteract(t, s, "alice", "tie1", base)
		mustInteract(t, s, "alice", "tie2", base)
		mustInteract(t, s, "alicex", "prefix", base.Add(3*time.Hour))

		got, err := s.RecentForUser(ctx, "alice", 10)
		if err != nil {
			t.Fatalf("RecentForUser() error = %v", err)
		}
		want := []string{"new", "tie2", "tie1", "old"}
		var ids []string
		for _, in := range got {
			ids = append(ids, in.ItemID)
		}
		if !reflect.DeepEqual(ids, want) {
			t.Errorf("RecentForUser() = %v, want %v", ids, want)
		}
		if !got[0].Timestamp.Equal(base.Add(time.Hour)) || got[0].Type != recommend.InteractionView {
			t.Errorf("RecentForUser()[0] = %+v, fields not preserved", got[0])
		}

		limited, _ := s.RecentForUser(ctx, "alice", 2)
		if len(limited) != 2 || limited[0].ItemID != "new" {
			t.Errorf("RecentForUser(limit=2) = %+v", limited)
		}

		none, err := s.RecentForUser(ctx, "nobody", 5)
		if err != nil || len(none) != 0 {
			t.Errorf("RecentForUser(nobody) = %v, %v, want empty", none, err)
		}
	})
}

func TestStore_InWindow(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx := context.Background()
		mustInteract(t, s, "u1", "late", base.Add(30*time.Minute))
		mustInteract(t, s, "u2", "stale", base.Add(-2*time.Hour))
		mustInteract(t, s, "u1", "edge", base)
		mustInteract(t, s, "u3", "ancient", time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC))

		got, err := s.InWindow(ctx, base)
		if err != nil {
			t.Fatalf("InWindow() error = %v", err)
		}
		var ids []string
		for _, in := range got {
			ids = append(ids, in.ItemID)
		}
		if !reflect.DeepEqual(ids, []string{"edge", "late"}) {
			t.Errorf("InWindow() = %v, want [edge late]", ids)
		}

		all, _ := s.InWindow(ctx, time.Time{})
		if len(all) != 4 || all[0].ItemID != "ancient" {
			t.Errorf("InWindow(zero) = %+v, want 4 oldest first", all)
		}
	})
}

func TestStore_StatsAndReset(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx := context.Background()
		mustUpsert(t, s, "a", "b")
		mustInteract(t, s, "u1", "a", base)
		if err := s.UpsertUser(ctx, recommend.User{UserID: "u1", Preferences: []string{"technology"}}); err != nil {
			t.Fatalf("UpsertUser() error = %v", err)
		}
		if err := s.UpsertUser(ctx, recommend.User{UserID: "u1"}); err != nil {
			t.Fatalf("UpsertUser() error = %v", err)
		}

		stats, err := s.Stats(ctx)
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if stats.Items != 2 || stats.Users != 1 || stats.Interactions != 1 {
			t.Errorf("Stats() = %+v, want 2/1/1", stats)
		}
		if stats.Backend == "" {
			t.Error("Stats().Backend is empty")
		}

		if err := s.Reset(ctx); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		stats, _ = s.Stats(ctx)
		if stats.Items != 0 || stats.Users != 0 || stats.Interactions != 0 {
			t.Errorf("Stats() after Reset = %+v, want zero counts", stats)
		}

		// Sequences keep working after a reset.
		mustUpsert(t, s, "z", "y")
		all, _ := s.AllItems(ctx, 0)
		if got := itemIDs(all); !reflect.DeepEqual(got, []string{"z", "y"}) {
			t.Errorf("AllItems() after Reset = %v, want [z y]", got)
		}
	})
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := s.AllItems(ctx, 0); !errors.Is(err, context.Canceled) {
			t.Errorf("AllItems() error = %v, want context.Canceled", err)
		}
		if err := s.AppendInteraction(ctx, recommend.Interaction{UserID: "u", ItemID: "i"}); !errors.Is(err, context.Canceled) {
			t.Errorf("AppendInteraction() error = %v, want context.Canceled", err)
		}
	})
}

func TestStore_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, s testStore) {
		ctx := context.Background()
		mustUpsert(t, s, "hot")

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 25; i++ {
					in := recommend.Interaction{
						UserID:    fmt.Sprintf("u%d", w),
						ItemID:    "hot",
						Type:      recommend.InteractionClick,
						Timestamp: base.Add(time.Duration(i) * time.Second),
					}
					if err := s.AppendInteraction(ctx, in); err != nil {
						t.Errorf("AppendInteraction() error = %v", err)
						return
					}
				}
			}(w)
		}
		wg.Wait()

		ranked, err := s.PopularityRank(ctx, nil, 1)
		if err != nil {
			t.Fatalf("PopularityRank() error = %v", err)
		}
		if len(ranked) != 1 || ranked[0].Count != 200 {
			t.Errorf("PopularityRank() = %v, want hot:200", countIDs(ranked))
		}
	})
}
