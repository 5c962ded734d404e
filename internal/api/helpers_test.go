// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/config"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/middleware"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/models"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend/storage"
	"github.com/sid2001sing/Real-time-recommendation-engine/internal/synth"
)

// testEnvelope mirrors models.APIResponse with a raw data payload.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// downStore fails every operation as if its breaker were open.
type downStore struct{}

var errDown = fmt.Errorf("store: %w", recommend.ErrStoreUnavailable)

func (downStore) UpsertItem(context.Context, recommend.Item) error { return errDown }

func (downStore) GetItems(context.Context, []string) ([]recommend.Item, error) { return nil, errDown }

func (downStore) AllItems(context.Context, int) ([]recommend.Item, error) { return nil, errDown }

func (downStore) PopularityRank(context.Context, map[string]struct{}, int) ([]recommend.ItemCount, error) {
	return nil, errDown
}

func (downStore) AppendInteraction(context.Context, recommend.Interaction) error { return errDown }

func (downStore) RecentForUser(context.Context, string, int) ([]recommend.Interaction, error) {
	return nil, errDown
}

func (downStore) InWindow(context.Context, time.Time) ([]recommend.Interaction, error) {
	return nil, errDown
}

func (downStore) UpsertUser(context.Context, recommend.User) error { return errDown }

func (downStore) Stats(context.Context) (recommend.StoreStats, error) {
	return recommend.StoreStats{Backend: "down", BreakerState: "open"}, errDown
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	cfg.Server.Timeout = 5 * time.Second
	cfg.Security.RateLimitDisabled = true
	cfg.Security.CORSOrigins = []string{"https://app.example.com"}
	return cfg
}

type testServer struct {
	handler http.Handler
	engine  *recommend.Engine
}

func newTestServer(t *testing.T, store recommend.Store, cfg *config.Config) *testServer {
	t.Helper()

	if store == nil {
		store = storage.NewMemoryStore()
	}
	if cfg == nil {
		cfg = testConfig()
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, synth.New(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	perf := middleware.NewPerformanceMonitor(100, time.Hour, zerolog.Nop())
	h := NewHandler(engine, cfg, perf, "test")
	return &testServer{handler: NewRouter(h, cfg).Setup(), engine: engine}
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env testEnvelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: invalid JSON envelope %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return v
}
