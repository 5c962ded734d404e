// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

func TestRecommendations(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)
	if rec, _ := s.do(t, http.MethodPost, "/api/v1/sample-data", ""); rec.Code != http.StatusOK {
		t.Fatalf("sample-data status = %d", rec.Code)
	}

	tests := []struct {
		name     string
		target   string
		wantTier string
		wantMode recommend.Mode
		maxItems int
	}{
		{name: "standard", target: "/api/v1/recommendations/alice?limit=3", wantTier: recommend.TierDatabase, wantMode: recommend.ModeStandard, maxItems: 3},
		{name: "search with query", target: "/api/v1/recommendations/alice?search_based=true&query=python+tutorial", wantTier: recommend.TierQuery, wantMode: recommend.ModeSearch, maxItems: 10},
		{name: "search with profile", target: "/api/v1/recommendations/alice?search_based=1", wantTier: recommend.TierPersonalized, wantMode: recommend.ModeSearch, maxItems: 10},
		{name: "search cold user", target: "/api/v1/recommendations/nobody?search_based=true", wantTier: recommend.TierSeeded, wantMode: recommend.ModeSearch, maxItems: 10},
		{name: "bad limit uses default", target: "/api/v1/recommendations/alice?limit=abc", wantTier: recommend.TierDatabase, wantMode: recommend.ModeStandard, maxItems: 10},
		{name: "limit clamped", target: "/api/v1/recommendations/nobody?limit=5000", wantTier: recommend.TierDatabase, wantMode: recommend.ModeStandard, maxItems: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := s.do(t, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK || env.Status != "success" {
				t.Fatalf("status = %d/%s, body %s", rec.Code, env.Status, rec.Body.String())
			}
			resp := decodeData[recommend.Response](t, env)
			if resp.Metadata.Tier != tt.wantTier || resp.Metadata.Mode != tt.wantMode {
				t.Errorf("tier/mode = %s/%s, want %s/%s", resp.Metadata.Tier, resp.Metadata.Mode, tt.wantTier, tt.wantMode)
			}
			if n := len(resp.Items); n == 0 || n > tt.maxItems {
				t.Errorf("len(items) = %d, want 1..%d", n, tt.maxItems)
			}
			for _, item := range resp.Items {
				if item.Source == "" {
					t.Errorf("item %s has no source", item.ItemID)
				}
			}
			if resp.Metadata.RequestID == "" || resp.Metadata.RequestID != rec.Header().Get("X-Request-ID") {
				t.Errorf("engine request id %q, header %q", resp.Metadata.RequestID, rec.Header().Get("X-Request-ID"))
			}
		})
	}
}

func TestRecommendations_StoreDown(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, downStore{}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/recommendations/alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeData[recommend.Response](t, env)
	if resp.Metadata.Tier != recommend.TierDefault || len(resp.Items) == 0 {
		t.Errorf("tier = %s with %d items, want default catalog", resp.Metadata.Tier, len(resp.Items))
	}
}

func TestRecommendations_InvalidParams(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)
	long := strings.Repeat("q", 600)

	for _, target := range []string{
		"/api/v1/recommendations/alice?query=" + long,
		"/api/v1/recommendations/" + strings.Repeat("u", 200),
	} {
		rec, env := s.do(t, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != ErrCodeValidation {
			t.Errorf("GET %.60s: status %d, error %+v", target, rec.Code, env.Error)
		}
	}
}

func TestTrending(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)

	tests := []struct {
		name     string
		target   string
		wantTier string
		wantCode int
	}{
		{name: "query", target: "/api/v1/trending?query=ai+news&limit=4", wantTier: recommend.TierQueryTrending, wantCode: http.StatusOK},
		{name: "real-time", target: "/api/v1/trending?category=technology&hours=48", wantTier: recommend.TierRealTime, wantCode: http.StatusOK},
		{name: "hours too large", target: "/api/v1/trending?hours=100000", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := s.do(t, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			resp := decodeData[recommend.Response](t, env)
			if resp.Metadata.Tier != tt.wantTier || resp.Metadata.Mode != recommend.ModeTrending {
				t.Errorf("tier = %s mode = %s, want %s/trending", resp.Metadata.Tier, resp.Metadata.Mode, tt.wantTier)
			}
			if len(resp.Items) == 0 {
				t.Error("trending returned no items")
			}
		})
	}
}

func TestSearchHistoryAndProfile(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/profiles/carol", "")
	if rec.Code != http.StatusNotFound || env.Error.Code != ErrCodeNotFound {
		t.Fatalf("profile before update: status %d, error %+v", rec.Code, env.Error)
	}

	body := `{"user_id":"carol","history":[
		{"url":"https://www.google.com/search?q=python+programming","title":"x","timestamp":"2026-03-01T10:00:00Z"},
		{"url":"https://example.com/trip","title":"Cheap hotel deals","timestamp":1772359200},
		{"url":"https://example.com","title":""}
	]}`
	rec, env = s.do(t, http.MethodPost, "/api/v1/search-history", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("search-history status = %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeData[searchHistoryResponse](t, env)
	if updated.Profile == nil || updated.Profile.TotalQueryCount != 2 {
		t.Fatalf("profile = %+v, want 2 queries", updated.Profile)
	}
	if len(updated.Insights) == 0 {
		t.Error("expected insights")
	}

	rec, env = s.do(t, http.MethodGet, "/api/v1/profiles/carol", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status = %d", rec.Code)
	}
	profile := decodeData[recommend.SearchIntentProfile](t, env)
	if profile.UserID != "carol" || len(profile.RecentQueries) != 2 {
		t.Errorf("profile = %+v", profile)
	}

	rec, env = s.do(t, http.MethodGet, "/api/v1/profiles/carol/insights?limit=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("insights status = %d", rec.Code)
	}
	if insights := decodeData[[]recommend.Insight](t, env); len(insights) != 1 {
		t.Errorf("len(insights) = %d, want 1", len(insights))
	}
}

func TestSearchHistory_BadRequests(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{name: "empty body", body: "", wantCode: http.StatusBadRequest, wantErr: ErrCodeBadRequest},
		{name: "malformed", body: "{", wantCode: http.StatusBadRequest, wantErr: ErrCodeBadRequest},
		{name: "missing user", body: `{"history":[{"title":"x"}]}`, wantCode: http.StatusBadRequest, wantErr: ErrCodeValidation},
		{name: "empty history", body: `{"user_id":"u","history":[]}`, wantCode: http.StatusBadRequest, wantErr: ErrCodeValidation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := s.do(t, http.MethodPost, "/api/v1/search-history", tt.body)
			if rec.Code != tt.wantCode || env.Error == nil || env.Error.Code != tt.wantErr {
				t.Errorf("status %d error %+v, want %d %s", rec.Code, env.Error, tt.wantCode, tt.wantErr)
			}
		})
	}
}

func TestSearchSuggestionsAndClassify(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)

	_, env := s.do(t, http.MethodGet, "/api/v1/search-suggestions?q=py", "")
	if got := decodeData[[]string](t, env); len(got) != 0 {
		t.Errorf("short prefix suggestions = %v, want none", got)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/search-suggestions", "")
	if got := decodeData[[]string](t, env); got == nil || len(got) != 0 {
		t.Errorf("empty q suggestions = %v, want []", got)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/search-suggestions?q=python&limit=2", "")
	if got := decodeData[[]string](t, env); len(got) == 0 || len(got) > 2 {
		t.Errorf("suggestions = %v, want 1..2", got)
	}

	rec, _ := s.do(t, http.MethodGet, "/api/v1/search-suggestions?q=python&limit=50", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("limit=50 status = %d, want 400", rec.Code)
	}

	rec, env = s.do(t, http.MethodGet, "/api/v1/classify?q=buy+cheap+headphones", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("classify status = %d", rec.Code)
	}
	if a := decodeData[recommend.Analysis](t, env); a.Intent != recommend.IntentShopping {
		t.Errorf("intent = %s, want shopping", a.Intent)
	}

	if rec, _ := s.do(t, http.MethodGet, "/api/v1/classify?q=%20%20", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("blank q status = %d, want 400", rec.Code)
	}
}
