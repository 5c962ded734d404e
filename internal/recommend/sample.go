// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"fmt"
	"time"
)

// SampleSummary counts the records loaded by LoadSampleData.
type SampleSummary struct {
	Items        int  `json:"items"`
	Users        int  `json:"users"`
	Interactions int  `json:"interactions"`
	Profiles     int  `json:"profiles"`
	Reset        bool `json:"reset"`
}

var sampleItems = []Item{
	{ItemID: "tech_1", Title: "Python Machine Learning", Category: "technology", Description: "Advanced ML techniques with Python"},
	{ItemID: "ent_1", Title: "Sci-Fi Movie Collection", Category: "entertainment", Description: "Best science fiction movies of 2024"},
	{ItemID: "shop_1", Title: "Wireless Headphones Pro", Category: "shopping", Description: "Premium noise-canceling headphones"},
	{ItemID: "edu_1", Title: "Web Development Course", Category: "education", Description: "Complete full-stack development course"},
	{ItemID: "health_1", Title: "Fitness Tracker Guide", Category: "health", Description: "Best fitness trackers and health tips"},
	{ItemID: "travel_1", Title: "Europe Travel Guide", Category: "travel", Description: "Complete guide to European destinations"},
}

var sampleUsers = []string{"alice", "bob", "charlie", "demo", "test_user"}

var sampleInteractions = []struct {
	user, item string
	kind       InteractionType
}{
	{"alice", "tech_1", InteractionView},
	{"alice", "edu_1", InteractionLike},
	{"bob", "shop_1", InteractionPurchase},
	{"bob", "ent_1", InteractionView},
	{"charlie", "health_1", InteractionLike},
	{"charlie", "travel_1", InteractionView},
	{"demo", "tech_1", InteractionView},
	{"demo", "shop_1", InteractionLike},
}

var sampleHistories = []struct {
	user    string
	entries [][2]string // url, title
}{
	{"alice", [][2]string{
		{"https://google.com/search?q=python+machine+learning+tutorial", "Python ML"},
		{"https://google.com/search?q=web+development+course", "Web Dev"},
		{"https://google.com/search?q=artificial+intelligence+trends", "AI Trends"},
	}},
	{"bob", [][2]string{
		{"https://google.com/search?q=best+wireless+headphones+2024", "Headphones"},
		{"https://google.com/search?q=netflix+sci+fi+movies", "Sci-fi Movies"},
		{"https://google.com/search?q=electronics+deals+online", "Electronics"},
	}},
	{"demo", [][2]string{
		{"https://google.com/search?q=travel+destinations+2024", "Travel"},
		{"https://google.com/search?q=fitness+tracker+reviews", "Fitness"},
	}},
}

// LoadSampleData replaces the store contents with a small demo data set
// and builds search profiles for three users. Existing data is cleared
// only when the store implements Resetter.
func (e *Engine) LoadSampleData(ctx context.Context) (SampleSummary, error) {
	var summary SampleSummary

	if r, ok := e.store.(Resetter); ok {
		if err := r.Reset(ctx); err != nil {
			return summary, storeError("reset store", err)
		}
		e.profiles.Reset()
		summary.Reset = true
	}

	now := e.now().UTC()
	for _, item := range sampleItems {
		item.CreatedAt = now
		if err := e.AddItem(ctx, item); err != nil {
			return summary, fmt.Errorf("sample item %s: %w", item.ItemID, err)
		}
		summary.Items++
	}

	for _, id := range sampleUsers {
		if err := e.AddUser(ctx, User{UserID: id, CreatedAt: now}); err != nil {
			return summary, fmt.Errorf("sample user %s: %w", id, err)
		}
		summary.Users++
	}

	// Space interactions one second apart so recency order is stable.
	base := now.Add(-time.Duration(len(sampleInteractions)) * time.Second)
	for i, si := range sampleInteractions {
		in := Interaction{
			UserID:    si.user,
			ItemID:    si.item,
			Type:      si.kind,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := e.RecordInteraction(ctx, in); err != nil {
			return summary, fmt.Errorf("sample interaction %s/%s: %w", si.user, si.item, err)
		}
		summary.Interactions++
	}

	ts := RawTimestamp(now.Format(time.RFC3339))
	for _, h := range sampleHistories {
		entries := make([]HistoryEntry, len(h.entries))
		for i, en := range h.entries {
			entries[i] = HistoryEntry{URL: en[0], Title: en[1], Timestamp: ts}
		}
		e.UpdateProfile(ctx, h.user, entries)
		summary.Profiles++
	}

	e.logger.Info().
		Int("items", summary.Items).
		Int("users", summary.Users).
		Int("interactions", summary.Interactions).
		Int("profiles", summary.Profiles).
		Msg("sample data loaded")
	return summary, nil
}
