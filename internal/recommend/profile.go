// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ProfileCategoryTable categorizes individual history queries. It is
// smaller than DefaultCategoryTable and matched by plain substring count.
var ProfileCategoryTable = []CategoryKeywords{
	{Category: "technology", Keywords: []string{"python", "programming", "software", "ai", "machine learning", "tech", "computer"}},
	{Category: "entertainment", Keywords: []string{"movie", "film", "music", "game", "netflix", "youtube", "streaming"}},
	{Category: "shopping", Keywords: []string{"buy", "price", "review", "product", "amazon", "shop", "deal"}},
	{Category: "education", Keywords: []string{"learn", "course", "tutorial", "study", "university", "book"}},
	{Category: "health", Keywords: []string{"health", "fitness", "medical", "doctor", "exercise", "diet"}},
	{Category: "travel", Keywords: []string{"travel", "hotel", "flight", "vacation", "trip", "destination"}},
}

// CategoryCount pairs a category with the number of queries it won.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SearchIntentProfile summarizes a user's search history. Values are
// immutable once published by a ProfileStore.
type SearchIntentProfile struct {
	UserID string `json:"user_id"`

	// RecentQueries holds the newest query texts, most recent last.
	RecentQueries []string `json:"recent_queries"`

	// CategoryCounts maps non-general categories to query counts.
	CategoryCounts map[string]int `json:"category_counts"`

	// TopCategories is ordered by count desc, ties by first appearance.
	TopCategories []CategoryCount `json:"top_categories"`

	// Keywords are the lowercased words of every analyzed query.
	Keywords []string `json:"keywords"`

	// SearchFrequency is the number of queries inside the recency window.
	SearchFrequency int `json:"search_frequency"`

	// TotalQueryCount is the number of queries extracted from the history.
	TotalQueryCount int `json:"total_query_count"`

	// LastUpdated is the newest parsed query timestamp, zero if none.
	LastUpdated time.Time `json:"last_updated"`
}

// TopCategoryNames returns the names of TopCategories in order.
func (p *SearchIntentProfile) TopCategoryNames() []string {
	names := make([]string, len(p.TopCategories))
	for i, c := range p.TopCategories {
		names[i] = c.Category
	}
	return names
}

// BuildProfile computes a profile from extracted queries. It depends only
// on its arguments: identical queries yield an identical profile.
//
// Queries are ordered by timestamp, with defaulted timestamps after all
// parsed ones. The recency window is anchored on the newest parsed
// timestamp. Queries with defaulted timestamps are always inside it.
//
//nolint:gocritic // hugeParam: cfg passed by value, read-only
func BuildProfile(userID string, queries []SearchQuery, cfg ProfileConfig) *SearchIntentProfile {
	ordered := make([]SearchQuery, len(queries))
	copy(ordered, queries)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.TimestampDefaulted != b.TimestampDefaulted {
			return !a.TimestampDefaulted
		}
		if a.TimestampDefaulted {
			return false
		}
		return a.Timestamp.Before(b.Timestamp)
	})

	var newest time.Time
	for i := range ordered {
		if !ordered[i].TimestampDefaulted && ordered[i].Timestamp.After(newest) {
			newest = ordered[i].Timestamp
		}
	}

	var cutoff time.Time
	if cfg.RecencyWindow > 0 && !newest.IsZero() {
		cutoff = newest.Add(-cfg.RecencyWindow)
	}

	texts := make([]string, 0, len(ordered))
	for i := range ordered {
		q := &ordered[i]
		if !q.TimestampDefaulted && q.Timestamp.Before(cutoff) {
			continue
		}
		if text := strings.TrimSpace(q.Text); text != "" {
			texts = append(texts, text)
		}
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, text := range texts {
		category := categorizeQuery(text)
		if category == CategoryGeneral {
			continue
		}
		if _, ok := counts[category]; !ok {
			firstSeen = append(firstSeen, category)
		}
		counts[category]++
	}

	top := make([]CategoryCount, len(firstSeen))
	for i, c := range firstSeen {
		top[i] = CategoryCount{Category: c, Count: counts[c]}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > cfg.TopCategories {
		top = top[:cfg.TopCategories]
	}

	var keywords []string
	for _, text := range texts {
		keywords = append(keywords, strings.Fields(strings.ToLower(text))...)
	}

	recent := texts
	if len(recent) > cfg.RecentQueries {
		recent = recent[len(recent)-cfg.RecentQueries:]
	}

	return &SearchIntentProfile{
		UserID:          userID,
		RecentQueries:   append([]string{}, recent...),
		CategoryCounts:  counts,
		TopCategories:   top,
		Keywords:        append([]string{}, keywords...),
		SearchFrequency: len(texts),
		TotalQueryCount: len(queries),
		LastUpdated:     newest,
	}
}

// categorizeQuery returns the ProfileCategoryTable row with the most
// keyword substrings in query. Table order breaks ties.
func categorizeQuery(query string) string {
	lower := strings.ToLower(query)
	best, bestScore := CategoryGeneral, 0
	for _, row := range ProfileCategoryTable {
		score := 0
		for _, kw := range row.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = row.Category, score
		}
	}
	return best
}

// Insight is a human readable observation derived from a profile.
type Insight struct {
	Type       string  `json:"type"`
	Category   string  `json:"category,omitempty"`
	Query      string  `json:"query,omitempty"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// Insights summarizes p as category and recent search suggestions.
func Insights(p *SearchIntentProfile, limit int) []Insight {
	if p == nil {
		return []Insight{{
			Type:     "no_profile",
			Category: "No Profile",
			Reason:   "No search history found. Upload your search history first.",
		}}
	}

	var out []Insight
	for _, c := range p.TopCategories {
		out = append(out, Insight{
			Type:       "category_suggestion",
			Category:   titleCase(c.Category),
			Reason:     fmt.Sprintf("Based on %d recent searches in %s", c.Count, c.Category),
			Confidence: math.Min(float64(c.Count)/5.0, 1.0),
		})
	}

	recent := p.RecentQueries
	if len(recent) > 2 {
		recent = recent[:2]
	}
	for _, q := range recent {
		out = append(out, Insight{
			Type:       "search_suggestion",
			Query:      truncateRunes(q, 50, "..."),
			Reason:     fmt.Sprintf("Related to: \"%s...\"", truncateRunes(q, 30, "")),
			Confidence: 0.7,
		})
	}

	if len(out) == 0 {
		return []Insight{{
			Type:     "no_data",
			Category: "No Data",
			Reason:   "No search patterns detected yet.",
		}}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func truncateRunes(s string, n int, suffix string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + suffix
}

// titleCase upper-cases the first letter of every space separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

const profileStripes = 64

// ProfileStore holds the current SearchIntentProfile of every user.
//
// Each user has a slot holding an atomic pointer to an immutable profile.
// Writers for the same user serialize on a striped mutex and publish a
// fully built value with a single pointer store. Readers never lock.
type ProfileStore struct {
	slots   sync.Map // string -> *atomic.Pointer[SearchIntentProfile]
	count   atomic.Int64
	stripes [profileStripes]sync.Mutex

	repo   ProfileRepository
	logger zerolog.Logger

	persistErrors atomic.Int64
}

// NewProfileStore creates a store. repo may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProfileStore(repo ProfileRepository, logger zerolog.Logger) *ProfileStore {
	return &ProfileStore{
		repo:   repo,
		logger: logger.With().Str("component", "profiles").Logger(),
	}
}

func (s *ProfileStore) slot(userID string) *atomic.Pointer[SearchIntentProfile] {
	if v, ok := s.slots.Load(userID); ok {
		return v.(*atomic.Pointer[SearchIntentProfile])
	}
	v, loaded := s.slots.LoadOrStore(userID, new(atomic.Pointer[SearchIntentProfile]))
	if !loaded {
		s.count.Add(1)
	}
	return v.(*atomic.Pointer[SearchIntentProfile])
}

func (s *ProfileStore) stripe(userID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return &s.stripes[h.Sum32()%profileStripes]
}

// Get returns the current profile of userID.
func (s *ProfileStore) Get(userID string) (*SearchIntentProfile, bool) {
	v, ok := s.slots.Load(userID)
	if !ok {
		return nil, false
	}
	p := v.(*atomic.Pointer[SearchIntentProfile]).Load()
	return p, p != nil
}

// Replace builds a new profile for userID with build and publishes it.
// Concurrent Replace calls for the same user run one at a time.
// Persistence failures are logged and counted, never returned.
func (s *ProfileStore) Replace(ctx context.Context, userID string, build func() *SearchIntentProfile) *SearchIntentProfile {
	mu := s.stripe(userID)
	mu.Lock()
	defer mu.Unlock()

	p := build()
	s.slot(userID).Store(p)

	if s.repo != nil {
		if err := s.repo.SaveProfile(ctx, p); err != nil {
			s.persistErrors.Add(1)
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to persist search profile")
		}
	}
	return p
}

// Restore loads persisted profiles. Profiles already present are kept.
func (s *ProfileStore) Restore(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}
	profiles, err := s.repo.LoadProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("load profiles: %w", err)
	}
	restored := 0
	for _, p := range profiles {
		if p == nil || p.UserID == "" {
			continue
		}
		if s.slot(p.UserID).CompareAndSwap(nil, p) {
			restored++
		}
	}
	s.logger.Info().Int("profiles", restored).Msg("restored search profiles")
	return restored, nil
}

// Len returns the number of users with a profile slot.
func (s *ProfileStore) Len() int {
	return int(s.count.Load())
}

// PersistErrors returns the number of failed profile writes.
func (s *ProfileStore) PersistErrors() int64 {
	return s.persistErrors.Load()
}

// Reset drops every in-memory profile.
func (s *ProfileStore) Reset() {
	s.slots.Range(func(key, _ any) bool {
		mu := s.stripe(key.(string))
		mu.Lock()
		s.slots.Delete(key)
		s.count.Add(-1)
		mu.Unlock()
		return true
	})
}
