// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages.
// Metrics, caching and persistence are injected through the Observer,
// AnalysisCache and ProfileRepository interfaces.

// Seed inputs for personalized content when a user has no search profile.
var (
	seedKeywords   = []string{"trending", "popular", "recommended"}
	seedCategories = []string{"technology", "entertainment"}
)

// Engine fuses interaction history, content similarity, trending and query
// intent into a single ranked list, falling back through ordered tiers
// until one produces items. Ranking operations never fail.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	store      Store
	synth      ContentSynthesizer
	classifier *Classifier
	analyses   AnalysisCache
	observer   Observer
	now        func() time.Time

	candidates *CandidateGenerator
	similarity *SimilarityRanker
	trending   *TrendingAggregator
	extractor  *HistoryExtractor
	profiles   *ProfileStore
	repo       ProfileRepository

	requestCount   atomic.Int64
	fallbackCount  atomic.Int64
	classifyHits   atomic.Int64
	classifyMisses atomic.Int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithAnalysisCache memoizes query classification in c.
func WithAnalysisCache(c AnalysisCache) Option {
	return func(e *Engine) { e.analyses = c }
}

// WithProfileRepository persists search profiles to r.
func WithProfileRepository(r ProfileRepository) Option {
	return func(e *Engine) { e.repo = r }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithClassifier overrides the query classifier.
func WithClassifier(c *Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store Store, synth ContentSynthesizer, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if synth == nil {
		return nil, errors.New("content synthesizer is required")
	}

	e := &Engine{
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		store:      store,
		synth:      synth,
		classifier: NewClassifier(nil, nil),
		observer:   nopObserver{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.candidates = NewCandidateGenerator(store, store, cfg.Candidates)
	e.similarity = NewSimilarityRanker(store, cfg.Similarity, e.logger)
	e.trending = NewTrendingAggregator(store, store, e.now)
	e.extractor = NewHistoryExtractor(e.now)
	e.profiles = NewProfileStore(e.repo, e.logger)

	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend ranks items for a user. Requests with a query or SearchBased
// set use the search-powered tiers, all others the standard tiers.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req RecommendRequest) Response {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRecommend(req)
	mode := recommendMode(req)
	logger := e.requestLogger(req.RequestID, mode).With().Str("user_id", req.UserID).Logger()
	logger.Debug().Int("limit", req.Limit).Msg("processing recommendation request")

	res := e.runChain(ctx, mode, req.Limit, e.recommendTiers(req), logger)
	if len(res.items) == 0 {
		res.items = DefaultItems(req.Limit)
		res.tier = TierDefault
	}

	return e.buildResponse(req.RequestID, mode, req.Limit, res, start, logger)
}

// Trending ranks time-windowed popular content.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Trending(ctx context.Context, req TrendingRequest) Response {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareTrending(req)
	logger := e.requestLogger(req.RequestID, ModeTrending).With().
		Str("category", req.Category).
		Dur("window", req.Window).
		Logger()
	logger.Debug().Int("limit", req.Limit).Msg("processing trending request")

	res := e.runChain(ctx, ModeTrending, req.Limit, e.trendingTiers(req), logger)
	if len(res.items) == 0 {
		res.items = FallbackTrending(req.Limit)
		res.tier = TierTrendingFallback
	}

	return e.buildResponse(req.RequestID, ModeTrending, req.Limit, res, start, logger)
}

// RecommendTiers returns the tier names req would evaluate, in order.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendTiers(req RecommendRequest) []string {
	return tierNames(e.recommendTiers(e.prepareRecommend(req)))
}

// TrendingTiers returns the tier names req would evaluate, in order.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) TrendingTiers(req TrendingRequest) []string {
	return tierNames(e.trendingTiers(e.prepareTrending(req)))
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRecommend(req RecommendRequest) RecommendRequest {
	if req.RequestID == "" {
		req.RequestID = e.generateRequestID()
	}
	req.Limit = e.config.clampLimit(req.Limit)
	req.Query = strings.TrimSpace(req.Query)
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareTrending(req TrendingRequest) TrendingRequest {
	if req.RequestID == "" {
		req.RequestID = e.generateRequestID()
	}
	req.Limit = e.config.clampLimit(req.Limit)
	if req.Window <= 0 {
		req.Window = e.config.Trending.DefaultWindow
	}
	req.Query = strings.TrimSpace(req.Query)
	req.Category = strings.TrimSpace(req.Category)
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func recommendMode(req RecommendRequest) Mode {
	if req.SearchBased || req.Query != "" {
		return ModeSearch
	}
	return ModeStandard
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommendTiers(req RecommendRequest) []tier {
	limit := req.Limit
	standard := []tier{
		{name: TierDatabase, source: SourceDatabase, run: func(ctx context.Context) ([]ScoredItem, error) {
			return e.rankStored(ctx, req.UserID, limit)
		}},
		{name: TierDefault, source: SourceDefault, run: func(context.Context) ([]ScoredItem, error) {
			return DefaultItems(limit), nil
		}},
	}

	if recommendMode(req) == ModeStandard {
		return standard
	}

	var first tier
	switch profile, ok := e.profiles.Get(req.UserID); {
	case req.Query != "":
		first = tier{name: TierQuery, source: SourceQuery, run: func(context.Context) ([]ScoredItem, error) {
			return e.queryItems(req.Query, limit), nil
		}}
	case ok:
		first = tier{name: TierPersonalized, source: SourcePersonalized, run: func(ctx context.Context) ([]ScoredItem, error) {
			return e.personalizedItems(ctx, req.UserID, profile, limit), nil
		}}
	default:
		first = tier{name: TierSeeded, source: SourcePersonalized, run: func(context.Context) ([]ScoredItem, error) {
			return truncate(e.synth.Personalized(seedKeywords, seedCategories, limit), limit), nil
		}}
	}
	return append([]tier{first}, standard...)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) trendingTiers(req TrendingRequest) []tier {
	limit := req.Limit
	fallback := tier{name: TierTrendingFallback, source: SourceFallback, run: func(context.Context) ([]ScoredItem, error) {
		return FallbackTrending(limit), nil
	}}

	if req.Query != "" {
		return []tier{
			{name: TierQueryTrending, source: SourceTrending, run: func(context.Context) ([]ScoredItem, error) {
				return e.queryTrendingItems(req.Query, limit), nil
			}},
			fallback,
		}
	}
	return []tier{
		{name: TierRealTime, source: SourceRealTime, run: func(ctx context.Context) ([]ScoredItem, error) {
			return e.realTimeItems(ctx, req.Category, req.Window, limit), nil
		}},
		fallback,
	}
}

// rankStored returns popular unseen items for userID, reordered by
// content similarity when there are more candidates than limit.
func (e *Engine) rankStored(ctx context.Context, userID string, limit int) ([]ScoredItem, error) {
	cands, err := e.candidates.Generate(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]ScoredItem, len(cands.Items))
	for i := range cands.Items {
		items[i] = ScoredItem{Item: cands.Items[i], Source: SourceDatabase}
	}
	if len(items) > limit {
		e.similarity.Rank(ctx, cands.Recent, items)
	}
	return truncate(items, limit), nil
}

// queryItems synthesizes intent-specific items for query and orders them
// by query relevance.
func (e *Engine) queryItems(query string, limit int) []ScoredItem {
	analysis := e.Classify(query)
	items := e.synth.QueryRecommendations(analysis, limit)
	scoreRelevance(items, analysis)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Relevance() > items[j].Relevance()
	})
	return truncate(items, limit)
}

// queryTrendingItems synthesizes trending items for query ordered by
// relevance, then trend score.
func (e *Engine) queryTrendingItems(query string, limit int) []ScoredItem {
	analysis := e.Classify(query)
	items := e.synth.QueryTrending(analysis, limit)
	scoreRelevance(items, analysis)
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Relevance(), items[j].Relevance()
		if ri != rj {
			return ri > rj
		}
		return items[i].Trend() > items[j].Trend()
	})
	return truncate(items, limit)
}

// personalizedItems merges profile-driven synthesized content with up to
// half of limit stored recommendations.
func (e *Engine) personalizedItems(ctx context.Context, userID string, profile *SearchIntentProfile, limit int) []ScoredItem {
	half := limit / 2

	keywords := profile.RecentQueries
	if len(keywords) > e.config.Profile.KeywordQueries {
		keywords = keywords[:e.config.Profile.KeywordQueries]
	}
	merged := e.synth.Personalized(keywords, profile.TopCategoryNames(), half)
	merged = truncate(merged, half)

	if half > 0 {
		stored, err := e.rankStored(ctx, userID, half)
		if err != nil {
			e.logger.Warn().Err(err).Str("user_id", userID).Msg("stored recommendations unavailable for personalized merge")
		}
		merged = append(merged, stored...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Relevance() > merged[j].Relevance()
	})
	return truncate(merged, limit)
}

// realTimeItems unions curated category topics with aggregated trending
// items, filling missing trend scores and sources.
func (e *Engine) realTimeItems(ctx context.Context, category string, window time.Duration, limit int) []ScoredItem {
	items := e.synth.CategoryTrending(category, limit)

	stored, err := e.trending.Aggregate(ctx, window, category, limit/2)
	if err != nil {
		e.logger.Warn().Err(err).Msg("trending aggregation failed")
	}
	items = append(items, stored...)

	for i := range items {
		if !items[i].HasTrend() {
			items[i].SetTrend(e.config.Trending.DefaultTrendScore)
		}
		if items[i].Source == "" {
			items[i].Source = SourceRealTime
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Trend() > items[j].Trend()
	})
	return truncate(items, limit)
}

func scoreRelevance(items []ScoredItem, analysis Analysis) {
	for i := range items {
		items[i].SetRelevance(ScoreQueryRelevance(items[i].Item, analysis.Query, analysis.Keywords))
	}
}

func truncate(items []ScoredItem, limit int) []ScoredItem {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// Classify analyzes query, using the analysis cache when configured.
func (e *Engine) Classify(query string) Analysis {
	if e.analyses != nil {
		if a, ok := e.analyses.Get(query); ok {
			e.classifyHits.Add(1)
			e.observer.ObserveClassification(a.Intent, true)
			return a.clone()
		}
		e.classifyMisses.Add(1)
	}

	a := e.classifier.Classify(query)
	if e.analyses != nil {
		e.analyses.Add(query, a.clone())
	}
	e.observer.ObserveClassification(a.Intent, false)
	return a
}

// SearchSuggestions completes a partial query. limit <= 0 selects 5.
func (e *Engine) SearchSuggestions(partial string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	suggestions := e.synth.Suggestions(strings.TrimSpace(partial), limit)
	if suggestions == nil {
		return []string{}
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// UpdateProfile rebuilds the search profile of userID from raw browser
// history and publishes it atomically. Identical history yields an
// identical profile.
func (e *Engine) UpdateProfile(ctx context.Context, userID string, history []HistoryEntry) *SearchIntentProfile {
	queries := e.extractor.Extract(history)
	p := e.profiles.Replace(ctx, userID, func() *SearchIntentProfile {
		return BuildProfile(userID, queries, e.config.Profile)
	})

	e.observer.ObserveProfileUpdate(len(queries), e.profiles.Len())
	e.logger.Info().
		Str("user_id", userID).
		Int("entries", len(history)).
		Int("queries", len(queries)).
		Int("top_categories", len(p.TopCategories)).
		Msg("search profile updated")
	return p
}

// Profile returns the current search profile of userID.
func (e *Engine) Profile(userID string) (*SearchIntentProfile, bool) {
	return e.profiles.Get(userID)
}

// ProfileInsights summarizes the search profile of userID.
func (e *Engine) ProfileInsights(userID string, limit int) []Insight {
	if limit <= 0 {
		limit = 5
	}
	p, _ := e.profiles.Get(userID)
	return Insights(p, limit)
}

// RestoreProfiles loads persisted search profiles.
func (e *Engine) RestoreProfiles(ctx context.Context) (int, error) {
	n, err := e.profiles.Restore(ctx)
	if err != nil {
		return 0, err
	}
	e.observer.ObserveProfileUpdate(0, e.profiles.Len())
	return n, nil
}

func (e *Engine) buildResponse(requestID string, mode Mode, limit int, res chainResult, start time.Time, logger zerolog.Logger) Response {
	latency := time.Since(start)
	e.observer.ObserveRequest(mode, res.tier, len(res.items), latency)

	logger.Debug().
		Str("tier", res.tier).
		Strs("fallbacks", res.fallbacks).
		Int("returned", len(res.items)).
		Dur("latency", latency).
		Msg("recommendation complete")

	return Response{
		Items: res.items,
		Metadata: ResponseMetadata{
			RequestID:   requestID,
			Mode:        mode,
			Tier:        res.tier,
			Fallbacks:   res.fallbacks,
			Limit:       limit,
			LatencyMS:   latency.Milliseconds(),
			GeneratedAt: e.now().UTC(),
		},
	}
}

func (e *Engine) requestLogger(requestID string, mode Mode) zerolog.Logger {
	return e.logger.With().
		Str("request_id", requestID).
		Str("mode", string(mode)).
		Logger()
}

// generateRequestID generates a unique request ID for tracing.
func (e *Engine) generateRequestID() string {
	return "rec-" + uuid.NewString()
}
