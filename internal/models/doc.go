// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

// Package models defines the JSON envelope shared by every API endpoint.
//
// Domain payloads (items, responses, profiles) are the recommend package
// types and are embedded in APIResponse.Data unchanged.
package models
