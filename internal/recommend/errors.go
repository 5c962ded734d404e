// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import "errors"

var (
	// ErrStoreUnavailable means the item or interaction store could not be
	// reached. Ranking tiers treat it as "continue to the next tier".
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrEmptyResult means a tier legitimately produced no items.
	ErrEmptyResult = errors.New("empty result")

	// ErrMalformedInput means a field could not be normalized.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidInput is returned by ingestion operations for records that
	// fail validation.
	ErrInvalidInput = errors.New("invalid input")
)
