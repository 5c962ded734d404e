// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

// Package validation provides struct validation using go-playground/validator v10.
//
// A singleton validator caches struct metadata and reports field names
// from json tags. Two custom tags are registered:
//
//   - interaction_type: one of the recommend.InteractionTypes, or empty
//   - identifier: no whitespace, control characters or slashes
//
// Example:
//
//	type createItemRequest struct {
//	    ItemID string `json:"item_id" validate:"required,max=128,identifier"`
//	    Title  string `json:"title" validate:"required,max=512"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
//
// RequestValidationError matches recommend.ErrInvalidInput with errors.Is.
package validation
