// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Operation outcomes reported to a BreakerObserver.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// BreakerConfig configures the circuit breaker of a ResilientStore.
type BreakerConfig struct {
	// Name identifies the breaker in logs and metrics.
	Name string

	// MaxRequests is the number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval resets failure counts while closed. Zero never resets.
	Interval time.Duration

	// Timeout is how long the breaker stays open before half-opening.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that opens
	// the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the breaker settings used by the server.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "store",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerObserver receives breaker events, typically to export metrics.
type BreakerObserver interface {
	ObserveStoreOperation(op, outcome string, latency time.Duration)
	ObserveBreakerState(name, state string)
	ObserveBreakerTransition(name, from, to string)
}

// ResilientStore guards a recommend.Store with a circuit breaker. Calls
// rejected by an open breaker fail fast with recommend.ErrStoreUnavailable,
// which the engine answers from its fallback tiers.
//
// The breaker uses real time for its interval and timeout, so tests drive
// state with consecutive failures rather than clocks.
type ResilientStore struct {
	inner    recommend.Store
	cb       *gobreaker.CircuitBreaker[any]
	name     string
	observer BreakerObserver
	logger   zerolog.Logger
}

// Verify interface compliance at compile time.
var (
	_ recommend.Store             = (*ResilientStore)(nil)
	_ recommend.StatsProvider     = (*ResilientStore)(nil)
	_ recommend.Resetter          = (*ResilientStore)(nil)
	_ recommend.ProfileRepository = (*ResilientStore)(nil)
	_ recommend.Maintainer        = (*ResilientStore)(nil)
)

// ResilientOption configures a ResilientStore.
type ResilientOption func(*ResilientStore)

// WithBreakerObserver reports operations and state changes to o.
func WithBreakerObserver(o BreakerObserver) ResilientOption {
	return func(s *ResilientStore) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithBreakerLogger sets the logger for state transitions.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func WithBreakerLogger(logger zerolog.Logger) ResilientOption {
	return func(s *ResilientStore) {
		s.logger = logger
	}
}

type nopBreakerObserver struct{}

func (nopBreakerObserver) ObserveStoreOperation(string, string, time.Duration) {}
func (nopBreakerObserver) ObserveBreakerState(string, string)                  {}
func (nopBreakerObserver) ObserveBreakerTransition(string, string, string)     {}

// NewResilientStore wraps inner with a circuit breaker.
func NewResilientStore(inner recommend.Store, cfg BreakerConfig, opts ...ResilientOption) *ResilientStore {
	def := DefaultBreakerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}

	s := &ResilientStore{
		inner:    inner,
		name:     cfg.Name,
		observer: nopBreakerObserver{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "store_breaker").Str("breaker", cfg.Name).Logger()

	s.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// Cancellation is the caller giving up, not the store failing.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Store circuit breaker state transition")
			s.observer.ObserveBreakerState(name, to.String())
			s.observer.ObserveBreakerTransition(name, from.String(), to.String())
		},
	})
	s.observer.ObserveBreakerState(cfg.Name, s.cb.State().String())

	return s
}

// State returns the breaker state: "closed", "half-open" or "open".
func (s *ResilientStore) State() string {
	return s.cb.State().String()
}

// Unwrap returns the guarded store.
func (s *ResilientStore) Unwrap() recommend.Store {
	return s.inner
}

// execute runs fn through the breaker and records the outcome.
func (s *ResilientStore) execute(op string, fn func() (any, error)) (any, error) {
	start := time.Now()
	result, err := s.cb.Execute(fn)
	latency := time.Since(start)

	switch {
	case err == nil:
		s.observer.ObserveStoreOperation(op, OutcomeSuccess, latency)
		return result, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		s.observer.ObserveStoreOperation(op, OutcomeRejected, latency)
		return nil, fmt.Errorf("%s: %w: %w", op, recommend.ErrStoreUnavailable, err)
	default:
		s.observer.ObserveStoreOperation(op, OutcomeFailure, latency)
		return nil, err
	}
}

// call runs a typed store read through the breaker.
func call[T any](s *ResilientStore, op string, fn func() (T, error)) (T, error) {
	result, err := s.execute(op, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// exec runs a store write through the breaker.
func (s *ResilientStore) exec(op string, fn func() error) error {
	_, err := s.execute(op, func() (any, error) {
		return nil, fn()
	})
	return err
}

// UpsertItem implements recommend.ItemStore.
//
//nolint:gocritic // hugeParam: item passed through by value
func (s *ResilientStore) UpsertItem(ctx context.Context, item recommend.Item) error {
	return s.exec("upsert_item", func() error { return s.inner.UpsertItem(ctx, item) })
}

// GetItems implements recommend.ItemStore.
func (s *ResilientStore) GetItems(ctx context.Context, ids []string) ([]recommend.Item, error) {
	return call(s, "get_items", func() ([]recommend.Item, error) { return s.inner.GetItems(ctx, ids) })
}

// AllItems implements recommend.ItemStore.
func (s *ResilientStore) AllItems(ctx context.Context, limit int) ([]recommend.Item, error) {
	return call(s, "all_items", func() ([]recommend.Item, error) { return s.inner.AllItems(ctx, limit) })
}

// PopularityRank implements recommend.ItemStore.
func (s *ResilientStore) PopularityRank(ctx context.Context, exclude map[string]struct{}, limit int) ([]recommend.ItemCount, error) {
	return call(s, "popularity_rank", func() ([]recommend.ItemCount, error) {
		return s.inner.PopularityRank(ctx, exclude, limit)
	})
}

// AppendInteraction implements recommend.InteractionStore.
//
//nolint:gocritic // hugeParam: in passed through by value
func (s *ResilientStore) AppendInteraction(ctx context.Context, in recommend.Interaction) error {
	return s.exec("append_interaction", func() error { return s.inner.AppendInteraction(ctx, in) })
}

// RecentForUser implements recommend.InteractionStore.
func (s *ResilientStore) RecentForUser(ctx context.Context, userID string, limit int) ([]recommend.Interaction, error) {
	return call(s, "recent_for_user", func() ([]recommend.Interaction, error) {
		return s.inner.RecentForUser(ctx, userID, limit)
	})
}

// InWindow implements recommend.InteractionStore.
func (s *ResilientStore) InWindow(ctx context.Context, since time.Time) ([]recommend.Interaction, error) {
	return call(s, "in_window", func() ([]recommend.Interaction, error) { return s.inner.InWindow(ctx, since) })
}

// UpsertUser implements recommend.UserStore.
//
//nolint:gocritic // hugeParam: user passed through by value
func (s *ResilientStore) UpsertUser(ctx context.Context, user recommend.User) error {
	return s.exec("upsert_user", func() error { return s.inner.UpsertUser(ctx, user) })
}

// Stats reports the inner store's counts plus the breaker state. Stats
// bypasses the breaker so that status stays observable while it is open.
func (s *ResilientStore) Stats(ctx context.Context) (recommend.StoreStats, error) {
	stats := recommend.StoreStats{Backend: "unknown"}
	var err error
	if sp, ok := s.inner.(recommend.StatsProvider); ok {
		stats, err = sp.Stats(ctx)
	}
	stats.BreakerState = s.State()
	if err == nil && s.cb.State() == gobreaker.StateOpen {
		err = fmt.Errorf("%w: circuit breaker %s is open", recommend.ErrStoreUnavailable, s.name)
	}
	return stats, err
}

// Reset drops all records of the inner store.
func (s *ResilientStore) Reset(ctx context.Context) error {
	r, ok := s.inner.(recommend.Resetter)
	if !ok {
		return fmt.Errorf("reset: %w", errors.ErrUnsupported)
	}
	return s.exec("reset", func() error { return r.Reset(ctx) })
}

// SaveProfile implements recommend.ProfileRepository when the inner store does.
func (s *ResilientStore) SaveProfile(ctx context.Context, p *recommend.SearchIntentProfile) error {
	repo, ok := s.inner.(recommend.ProfileRepository)
	if !ok {
		return nil
	}
	return s.exec("save_profile", func() error { return repo.SaveProfile(ctx, p) })
}

// LoadProfiles implements recommend.ProfileRepository when the inner store does.
func (s *ResilientStore) LoadProfiles(ctx context.Context) ([]*recommend.SearchIntentProfile, error) {
	repo, ok := s.inner.(recommend.ProfileRepository)
	if !ok {
		return nil, nil
	}
	return call(s, "load_profiles", func() ([]*recommend.SearchIntentProfile, error) {
		return repo.LoadProfiles(ctx)
	})
}

// Maintain runs the inner store's housekeeping outside the breaker.
func (s *ResilientStore) Maintain(ctx context.Context) error {
	if m, ok := s.inner.(recommend.Maintainer); ok {
		return m.Maintain(ctx)
	}
	return nil
}
