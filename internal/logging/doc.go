// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

// Package logging provides the process-wide zerolog logger.
//
// Components receive a zerolog.Logger at construction and derive a
// "component" field from it; request handlers use Ctx(ctx) so that
// entries carry the request ID set by the HTTP middleware.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logger := logging.WithComponent("engine")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Store unavailable")
//
// SlogHandler bridges slog-only libraries (sutureslog) onto the same
// stream.
package logging
