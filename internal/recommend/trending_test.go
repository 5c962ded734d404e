// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestTrendingAggregator_Score(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var interactions []Interaction

	// wide: 5 interactions from 3 users -> 15
	for i, u := range []string{"u1", "u2", "u3", "u1", "u2"} {
		interactions = append(interactions, Interaction{UserID: u, ItemID: "wide", Timestamp: now.Add(-time.Duration(i) * time.Minute)})
	}
	// deep: 10 interactions from 1 user -> 10
	for i := 0; i < 10; i++ {
		interactions = append(interactions, Interaction{UserID: "u9", ItemID: "deep", Timestamp: now.Add(-time.Duration(i) * time.Minute)})
	}
	// stale: outside the window
	interactions = append(interactions, Interaction{UserID: "u1", ItemID: "stale", Timestamp: now.Add(-48 * time.Hour)})

	s := seedStore(t, []Item{{ItemID: "deep"}, {ItemID: "wide"}, {ItemID: "stale"}}, interactions)
	a := NewTrendingAggregator(s, s, fixedClock(now))

	got, err := a.Aggregate(context.Background(), 24*time.Hour, "", 10)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Aggregate()) = %d, want 2", len(got))
	}
	if got[0].ItemID != "wide" || got[0].Trend() != 15 {
		t.Errorf("first = %s/%d, want wide/15", got[0].ItemID, got[0].Trend())
	}
	if got[1].ItemID != "deep" || got[1].Trend() != 10 {
		t.Errorf("second = %s/%d, want deep/10", got[1].ItemID, got[1].Trend())
	}
}

func TestTrendingAggregator_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := seedStore(t,
		[]Item{{ItemID: "a"}, {ItemID: "b"}, {ItemID: "c"}},
		[]Interaction{
			{UserID: "u1", ItemID: "c", Timestamp: now},
			{UserID: "u1", ItemID: "a", Timestamp: now},
			{UserID: "u1", ItemID: "b", Timestamp: now},
		},
	)
	a := NewTrendingAggregator(s, s, fixedClock(now))

	got, _ := a.Aggregate(context.Background(), time.Hour, "", 10)
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if got[i].ItemID != id {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ItemID, id)
		}
	}
}

func TestTrendingAggregator_Filters(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := seedStore(t,
		[]Item{{ItemID: "t1", Category: "Technology"}, {ItemID: "h1", Category: "health"}},
		[]Interaction{
			{UserID: "u1", ItemID: "t1", Timestamp: now},
			{UserID: "u1", ItemID: "h1", Timestamp: now},
			{UserID: "u1", ItemID: "deleted", Timestamp: now},
		},
	)
	a := NewTrendingAggregator(s, s, fixedClock(now))

	tests := []struct {
		category string
		limit    int
		want     []string
	}{
		{category: "", limit: 10, want: []string{"t1", "h1"}},
		{category: "technology", limit: 10, want: []string{"t1"}},
		{category: "HEALTH", limit: 10, want: []string{"h1"}},
		{category: "", limit: 1, want: []string{"t1"}},
		{category: "travel", limit: 10, want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%s/%d", tt.category, tt.limit), func(t *testing.T) {
			got, err := a.Aggregate(context.Background(), time.Hour, tt.category, tt.limit)
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			ids := make([]string, len(got))
			for i := range got {
				ids[i] = got[i].ItemID
			}
			if !equalStrings(ids, tt.want) {
				t.Errorf("Aggregate() = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestTrendingAggregator_EmptyAndError(t *testing.T) {
	t.Parallel()

	s := newFakeStore()
	a := NewTrendingAggregator(s, s, nil)

	got, err := a.Aggregate(context.Background(), time.Hour, "", 10)
	if err != nil || len(got) != 0 {
		t.Errorf("empty window: got %v, %v, want empty, nil", got, err)
	}

	s.err = errors.New("timeout")
	got, err = a.Aggregate(context.Background(), time.Hour, "", 10)
	if !errors.Is(err, ErrStoreUnavailable) || len(got) != 0 {
		t.Errorf("store error: got %v, %v, want empty, ErrStoreUnavailable", got, err)
	}
}
