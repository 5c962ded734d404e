// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package main is the entry point of the recommendation server.

The server ranks content for users by fusing stored interactions, search
intent profiles built from browser history, and synthesized query and
trending content. Every ranking request walks an ordered chain of tiers
and always answers, falling back to a static catalog when nothing else
produces items.

# Application Architecture

	RootSupervisor ("recommendation-engine")
	├── DataSupervisor ("data-layer")
	│   └── MaintenanceService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 from defaults, config.yaml and environment
 2. Logging: zerolog, level and format from configuration
 3. Store: in-memory or BadgerDB, optionally behind a gobreaker circuit breaker
 4. Engine: tiered ranking with query analysis cache and profile persistence
 5. Profiles: restored from BadgerDB when persist_profiles is set
 6. HTTP: chi router with rate limits, CORS and Prometheus metrics
 7. Supervisor: suture tree running maintenance and the HTTP server

# Configuration

	STORAGE_BACKEND=badger STORAGE_PATH=/data/recommender ./server
	SEED_SAMPLE_DATA=true HTTP_PORT=8000 ./server

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to server.shutdown_timeout, then the store is
closed.
*/
package main
