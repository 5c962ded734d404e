// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"fmt"
	"strings"
)

// AddItem inserts or replaces an item. Missing category, features and
// creation time are defaulted.
//
//nolint:gocritic // hugeParam: item passed by value, copied before storing
func (e *Engine) AddItem(ctx context.Context, item Item) error {
	item.ItemID = strings.TrimSpace(item.ItemID)
	if item.ItemID == "" {
		return fmt.Errorf("item_id is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("item %s: title is required: %w", item.ItemID, ErrInvalidInput)
	}
	if strings.TrimSpace(item.Category) == "" {
		item.Category = CategoryGeneral
	}
	if item.Features == nil {
		item.Features = []string{}
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = e.now().UTC()
	}

	if err := e.store.UpsertItem(ctx, item); err != nil {
		return storeError("upsert item", err)
	}
	return nil
}

// AddUser inserts or replaces a user.
//
//nolint:gocritic // hugeParam: user passed by value, copied before storing
func (e *Engine) AddUser(ctx context.Context, user User) error {
	user.UserID = strings.TrimSpace(user.UserID)
	if user.UserID == "" {
		return fmt.Errorf("user_id is required: %w", ErrInvalidInput)
	}
	if user.Preferences == nil {
		user.Preferences = []string{}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = e.now().UTC()
	}

	if err := e.store.UpsertUser(ctx, user); err != nil {
		return storeError("upsert user", err)
	}
	return nil
}

// RecordInteraction appends an interaction. An empty type records a view
// and a zero timestamp records the current time.
//
//nolint:gocritic // hugeParam: in passed by value, copied before storing
func (e *Engine) RecordInteraction(ctx context.Context, in Interaction) error {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ItemID = strings.TrimSpace(in.ItemID)
	if in.UserID == "" || in.ItemID == "" {
		return fmt.Errorf("user_id and item_id are required: %w", ErrInvalidInput)
	}

	t, ok := ParseInteractionType(string(in.Type))
	if !ok {
		return fmt.Errorf("interaction type %q: %w", in.Type, ErrInvalidInput)
	}
	in.Type = t

	if in.Timestamp.IsZero() {
		in.Timestamp = e.now().UTC()
	}

	if err := e.store.AppendInteraction(ctx, in); err != nil {
		return storeError("append interaction", err)
	}
	return nil
}
