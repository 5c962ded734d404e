// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"net/http"
	"testing"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/middleware"
)

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		down       bool
		target     string
		wantCode   int
		wantStatus string
	}{
		{name: "live", target: "/api/v1/health/live", wantCode: http.StatusOK, wantStatus: "alive"},
		{name: "live with store down", down: true, target: "/api/v1/health/live", wantCode: http.StatusOK, wantStatus: "alive"},
		{name: "ready", target: "/api/v1/health/ready", wantCode: http.StatusOK, wantStatus: "ready"},
		{name: "not ready", down: true, target: "/api/v1/health/ready", wantCode: http.StatusServiceUnavailable, wantStatus: "degraded"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s *testServer
			if tt.down {
				s = newTestServer(t, downStore{}, nil)
			} else {
				s = newTestServer(t, nil, nil)
			}

			rec, env := s.do(t, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			health := decodeData[HealthStatus](t, env)
			if health.Status != tt.wantStatus || health.Version != "test" {
				t.Errorf("health = %+v, want status %s", health, tt.wantStatus)
			}
			if tt.down && tt.wantCode != http.StatusOK && health.Reason == "" {
				t.Error("degraded health should carry a reason")
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)
	s.do(t, http.MethodPost, "/api/v1/sample-data", "")
	s.do(t, http.MethodGet, "/api/v1/recommendations/nobody", "")

	rec, env := s.do(t, http.MethodGet, "/api/v1/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	st := decodeData[StatusResponse](t, env)
	if st.Backend != "memory" || st.Items == 0 || st.SearchProfiles != 3 {
		t.Errorf("status = %+v", st)
	}
	if st.Requests < 1 || st.Version != "test" || st.Environment != "development" || st.GoVersion == "" {
		t.Errorf("status = %+v", st)
	}
	if st.Error != "" {
		t.Errorf("status error = %q, want none", st.Error)
	}
}

func TestPerformance(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil, nil)
	for i := 0; i < 3; i++ {
		s.do(t, http.MethodGet, "/api/v1/trending", "")
	}

	_, env := s.do(t, http.MethodGet, "/api/v1/status/performance", "")
	stats := decodeData[[]middleware.EndpointStats](t, env)
	if len(stats) == 0 {
		t.Fatal("no endpoint stats recorded")
	}
	if stats[0].Endpoint != "GET /api/v1/trending" || stats[0].RequestCount != 3 {
		t.Errorf("top endpoint = %+v, want 3 trending requests", stats[0])
	}
}
