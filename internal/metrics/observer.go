// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package metrics

import (
	"strconv"
	"time"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Observer exports engine and store events as Prometheus metrics. It
// satisfies recommend.Observer and storage.BreakerObserver.
type Observer struct{}

var _ recommend.Observer = Observer{}

// ObserveRequest records one ranking request.
func (Observer) ObserveRequest(mode recommend.Mode, tier string, items int, latency time.Duration) {
	m := string(mode)
	RecommendationRequests.WithLabelValues(m, tier).Inc()
	RecommendationDuration.WithLabelValues(m).Observe(latency.Seconds())
	RecommendationItems.WithLabelValues(m).Observe(float64(items))
}

// ObserveFallback records a skipped tier.
func (Observer) ObserveFallback(mode recommend.Mode, tier string) {
	FallbackTransitions.WithLabelValues(string(mode), tier).Inc()
}

// ObserveProfileUpdate records a profile rebuild.
func (Observer) ObserveProfileUpdate(queries, profiles int) {
	ProfileUpdates.Inc()
	ProfileQueries.Observe(float64(queries))
	SearchProfiles.Set(float64(profiles))
}

// ObserveClassification records a query classification.
func (Observer) ObserveClassification(intent recommend.Intent, cached bool) {
	QueryClassifications.WithLabelValues(string(intent), strconv.FormatBool(cached)).Inc()
}

// ObserveStoreOperation records a store call made through the breaker.
func (Observer) ObserveStoreOperation(op, outcome string, latency time.Duration) {
	StoreOperations.WithLabelValues(op, outcome).Inc()
	StoreOperationDuration.WithLabelValues(op).Observe(latency.Seconds())
}

// ObserveBreakerState sets the breaker state gauge.
func (Observer) ObserveBreakerState(name, state string) {
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(state))
}

// ObserveBreakerTransition counts a breaker state change.
func (Observer) ObserveBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
