// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package config provides layered configuration for the recommendation server.

# Configuration Sources

Configuration is assembled with Koanf v2 from three layers, later layers
overriding earlier ones:

  - Struct defaults (defaultConfig)
  - An optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/recommender/config.yaml
  - Environment variables from an explicit mapping table

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8000)
  - HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Storage:
  - STORAGE_BACKEND: memory (default) or badger
  - STORAGE_PATH: BadgerDB directory
  - STORAGE_SYNC_WRITES, STORAGE_GC_RATIO, STORAGE_PERSIST_PROFILES
  - BREAKER_ENABLED, BREAKER_MAX_REQUESTS, BREAKER_INTERVAL,
    BREAKER_TIMEOUT, BREAKER_FAILURE_THRESHOLD

Engine:
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT
  - RECOMMEND_HISTORY_SIZE, RECOMMEND_CANDIDATE_MULTIPLIER
  - RECOMMEND_TRENDING_WINDOW, RECOMMEND_DEFAULT_TREND_SCORE
  - RECOMMEND_PROFILE_* and RECOMMEND_CACHE_*
  - MAINTENANCE_INTERVAL

Security:
  - CORS_ORIGINS: comma-separated list
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Other:
  - SEED_SAMPLE_DATA: load the demo catalog at startup

# Example YAML

	server:
	  port: 8000
	storage:
	  backend: badger
	  path: /data/recommender
	  breaker:
	    failure_threshold: 5
	recommend:
	  max_limit: 50
	security:
	  cors_origins: ["https://app.example.com"]
*/
package config
