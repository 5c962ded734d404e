// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package metrics provides Prometheus metrics collection and export.

Collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

Ranking:
  - recommendation_requests_total{mode,tier}: requests by answering tier
  - recommendation_duration_seconds{mode}: request latency
  - recommendation_items{mode}: items per response
  - recommendation_fallbacks_total{mode,tier}: tiers skipped
  - query_classifications_total{intent,cached}

Profiles:
  - search_profile_updates_total, search_profile_queries, search_profiles

Store:
  - store_operations_total{operation,outcome}: outcome is success, failure
    or rejected (breaker open)
  - store_operation_duration_seconds{operation}
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Cache and maintenance:
  - cache_entries{cache}, cache_hit_rate_percent{cache}, cache_expired_total{cache}
  - maintenance_runs_total{result}

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests, api_rate_limit_hits_total{endpoint}

System:
  - app_info{version,go_version}, app_uptime_seconds

# Engine Integration

Observer implements recommend.Observer and storage.BreakerObserver:

	engine, _ := recommend.NewEngine(cfg, store, synth, logger,
	    recommend.WithObserver(metrics.Observer{}))
	guarded := storage.NewResilientStore(inner, breakerCfg,
	    storage.WithBreakerObserver(metrics.Observer{}))

Endpoint labels use chi route patterns (e.g. /api/v1/recommendations/{userID})
so that label cardinality stays bounded.
*/
package metrics
