// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/retrieval"
)

type fakeSearch struct {
	mu         sync.Mutex
	ready      bool
	rankErr    error
	rebuildErr error
	lastRank   retrieval.RankRequest
	lastBuild  retrieval.RebuildRequest
	rebuilds   int
}

func (f *fakeSearch) Rank(_ context.Context, req retrieval.RankRequest) (*retrieval.RankResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRank = req
	if f.rankErr != nil {
		return nil, f.rankErr
	}
	mode := req.Mode
	if mode == "" {
		mode = retrieval.ModePrimary
	}
	return &retrieval.RankResponse{
		Results: []models.RankedActor{
			{ActorID: 1, Score: 0.9},
			{ActorID: 3, Score: 0.5},
		},
		Mode:          mode,
		RequestedMode: mode,
	}, nil
}

func (f *fakeSearch) Rebuild(_ context.Context, req retrieval.RebuildRequest) (*retrieval.BuildResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBuild = req
	f.rebuilds++
	if f.rebuildErr != nil {
		return nil, f.rebuildErr
	}
	return &retrieval.BuildResult{Mode: req.Mode, PrimarySize: 3}, nil
}

func (f *fakeSearch) Status() retrieval.Status {
	return retrieval.Status{Ready: f.Ready(), Primary: retrieval.IndexStatus{Size: 3}}
}

func (f *fakeSearch) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

type fakePublisher struct {
	reqs []retrieval.RebuildRequest
	err  error
}

func (p *fakePublisher) RequestRebuild(_ context.Context, req retrieval.RebuildRequest) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.reqs = append(p.reqs, req)
	return fmt.Sprintf("evt-%d", len(p.reqs)), nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func newTestServer(t *testing.T, search *fakeSearch, pub RebuildPublisher, jwt *auth.JWTManager, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(search, pub), NewChiMiddleware(mw), jwt).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func TestSearchActors_GET(t *testing.T) {
	search := &fakeSearch{ready: true}
	h := newTestServer(t, search, nil, nil, nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/search/actors?q=a+romantic+night&mode=lsa&top_k=2&fame_weight=0.25&hydrate=true", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Error("success = false, want true")
	}
	if env.Meta == nil || env.Meta.Search == nil {
		t.Fatal("meta.search missing")
	}
	if env.Meta.Search.Count != 2 || env.Meta.Search.Mode != "lsa" {
		t.Errorf("meta.search = %+v, want count 2 mode lsa", env.Meta.Search)
	}
	if env.Meta.RequestID == "" || rec.Header().Get("X-Request-ID") != env.Meta.RequestID {
		t.Errorf("request id = %q, header %q", env.Meta.RequestID, rec.Header().Get("X-Request-ID"))
	}

	var data retrieval.RankResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Results) != 2 || data.Results[0].ActorID != 1 {
		t.Errorf("results = %+v", data.Results)
	}

	got := search.lastRank
	if got.Query != "a romantic night" || got.Mode != "lsa" || !got.Hydrate {
		t.Errorf("Rank() request = %+v", got)
	}
	if got.TopK == nil || *got.TopK != 2 {
		t.Errorf("TopK = %v, want 2", got.TopK)
	}
	if got.FameWeight == nil || *got.FameWeight != 0.25 {
		t.Errorf("FameWeight = %v, want 0.25", got.FameWeight)
	}
}

func TestSearchActors_POST(t *testing.T) {
	search := &fakeSearch{ready: true}
	h := newTestServer(t, search, nil, nil, nil)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/search/actors?top_k=1", `{"query":"scary night","mode":"primary","top_k":5}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if search.lastRank.Query != "scary night" {
		t.Errorf("Query = %q, want scary night", search.lastRank.Query)
	}
	if search.lastRank.TopK == nil || *search.lastRank.TopK != 1 {
		t.Errorf("TopK = %v, want query string override 1", search.lastRank.TopK)
	}

	rec, env := do(t, h, http.MethodPost, "/api/v1/search/actors", `{"query":"x","bogus":1}`, nil)
	if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeBadRequest {
		t.Errorf("unknown field: status = %d, error = %+v", rec.Code, env.Error)
	}
}

func TestSearchActors_UnusualQueryText(t *testing.T) {
	long := strings.Repeat("grief ", 334) // 2004 runes

	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		wantQuery string
	}{
		{
			name:      "control characters in body",
			method:    http.MethodPost,
			target:    "/api/v1/search/actors",
			body:      `{"query":"sad\u0000love\u001b"}`,
			wantQuery: "sad\x00love\x1b",
		},
		{
			name:      "escaped NUL in query string",
			method:    http.MethodGet,
			target:    "/api/v1/search/actors?q=sad%00love",
			wantQuery: "sad\x00love",
		},
		{
			name:      "long query is truncated",
			method:    http.MethodGet,
			target:    "/api/v1/search/actors?q=" + strings.ReplaceAll(long, " ", "+"),
			wantQuery: long[:maxQueryRunes],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := &fakeSearch{ready: true}
			h := newTestServer(t, search, nil, nil, nil)

			rec, env := do(t, h, tt.method, tt.target, tt.body, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}
			if !env.Success {
				t.Error("success = false, want true")
			}
			if search.lastRank.Query != tt.wantQuery {
				t.Errorf("Rank() query = %q (len %d), want %q", search.lastRank.Query, len(search.lastRank.Query), tt.wantQuery)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 3, ""},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"héllo", 2, "hé"},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSearchActors_BadInput(t *testing.T) {
	h := newTestServer(t, &fakeSearch{ready: true}, nil, nil, nil)

	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{"non-integer top_k", "/api/v1/search/actors?q=x&top_k=ten", ErrCodeBadRequest},
		{"non-numeric fame_weight", "/api/v1/search/actors?q=x&fame_weight=lots", ErrCodeBadRequest},
		{"non-boolean hydrate", "/api/v1/search/actors?q=x&hydrate=maybe", ErrCodeBadRequest},
		{"unknown mode", "/api/v1/search/actors?q=x&mode=all", ErrCodeValidationFailed},
		{"fame_weight out of range", "/api/v1/search/actors?q=x&fame_weight=2", ErrCodeValidationFailed},
		{"top_k too large", "/api/v1/search/actors?q=x&top_k=100000", ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodGet, tt.target, "", nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestSearchActors_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not ready", retrieval.ErrNotReady, http.StatusServiceUnavailable, ErrCodeNotReady},
		{"invalid mode", fmt.Errorf("%w: %q", retrieval.ErrInvalidMode, "x"), http.StatusBadRequest, ErrCodeInvalidMode},
		{"repository", fmt.Errorf("load: %w", retrieval.ErrRepository), http.StatusServiceUnavailable, ErrCodeRepositoryError},
		{"oracle", retrieval.ErrOracleUnavailable, http.StatusServiceUnavailable, ErrCodeOracleUnavailable},
		{"timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t, &fakeSearch{rankErr: tt.err}, nil, nil, nil)
			rec, env := do(t, h, http.MethodGet, "/api/v1/search/actors?q=x", "", nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestIndexRebuild(t *testing.T) {
	search := &fakeSearch{ready: true}
	pub := &fakePublisher{}
	h := newTestServer(t, search, pub, nil, nil)

	rec, env := do(t, h, http.MethodPost, "/api/v1/index/rebuild?mode=primary&reclassify=true", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync: status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var result retrieval.BuildResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	if result.PrimarySize != 3 {
		t.Errorf("PrimarySize = %d, want 3", result.PrimarySize)
	}
	if search.lastBuild.Mode != retrieval.ModePrimary || !search.lastBuild.Reclassify {
		t.Errorf("Rebuild() request = %+v", search.lastBuild)
	}

	rec, _ = do(t, h, http.MethodPost, "/api/v1/index/rebuild", "", nil)
	if rec.Code != http.StatusOK || search.lastBuild.Mode != retrieval.ModeAll {
		t.Errorf("default mode: status = %d, mode = %q, want 200 all", rec.Code, search.lastBuild.Mode)
	}

	rec, env = do(t, h, http.MethodPost, "/api/v1/index/rebuild?mode=lsa&async=true", "", nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("async: status = %d, want 202", rec.Code)
	}
	var accepted RebuildAccepted
	if err := json.Unmarshal(env.Data, &accepted); err != nil {
		t.Fatal(err)
	}
	if accepted.EventID != "evt-1" || accepted.Mode != retrieval.ModeLSA {
		t.Errorf("accepted = %+v", accepted)
	}
	if search.rebuilds != 2 {
		t.Errorf("synchronous rebuilds = %d, want 2", search.rebuilds)
	}
}

func TestIndexRebuild_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		rebuildErr error
		pubErr     error
		wantStatus int
	}{
		{"in progress", "/api/v1/index/rebuild", retrieval.ErrBuildInProgress, nil, http.StatusConflict},
		{"lsa disabled", "/api/v1/index/rebuild?mode=lsa", fmt.Errorf("%w: lsa index is disabled", retrieval.ErrInvalidMode), nil, http.StatusBadRequest},
		{"oracle down", "/api/v1/index/rebuild", retrieval.ErrOracleUnavailable, nil, http.StatusServiceUnavailable},
		{"bad mode", "/api/v1/index/rebuild?mode=everything", nil, nil, http.StatusBadRequest},
		{"bad reclassify", "/api/v1/index/rebuild?reclassify=perhaps", nil, nil, http.StatusBadRequest},
		{"publish fails", "/api/v1/index/rebuild?async=true", nil, errors.New("bus closed"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t, &fakeSearch{rebuildErr: tt.rebuildErr}, &fakePublisher{err: tt.pubErr}, nil, nil)
			rec, env := do(t, h, http.MethodPost, tt.target, "", nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Success {
				t.Error("success = true, want false")
			}
		})
	}
}

func TestIndexRebuild_RequiresToken(t *testing.T) {
	jwt, err := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	token, err := jwt.GenerateToken("operator", auth.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	search := &fakeSearch{ready: true}
	h := newTestServer(t, search, nil, jwt, nil)

	rec, env := do(t, h, http.MethodPost, "/api/v1/index/rebuild", "", nil)
	if rec.Code != http.StatusUnauthorized || env.Error == nil || env.Error.Code != ErrCodeUnauthorized {
		t.Errorf("no token: status = %d, error = %+v", rec.Code, env.Error)
	}

	rec, _ = do(t, h, http.MethodPost, "/api/v1/index/rebuild", "", map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", rec.Code)
	}

	rec, _ = do(t, h, http.MethodGet, "/api/v1/search/actors?q=x", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("search without token: status = %d, want 200", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	search := &fakeSearch{}
	h := newTestServer(t, search, nil, nil, nil)

	rec, _ := do(t, h, http.MethodGet, "/api/v1/health/live", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("live: status = %d, want 200", rec.Code)
	}
	rec, env := do(t, h, http.MethodGet, "/api/v1/health/ready", "", nil)
	if rec.Code != http.StatusServiceUnavailable || env.Error.Code != ErrCodeNotReady {
		t.Errorf("ready before build: status = %d, error = %+v", rec.Code, env.Error)
	}

	search.mu.Lock()
	search.ready = true
	search.mu.Unlock()

	rec, _ = do(t, h, http.MethodGet, "/api/v1/health/ready", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("ready after build: status = %d, want 200", rec.Code)
	}

	rec, env = do(t, h, http.MethodGet, "/api/v1/index/status", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: status = %d, want 200", rec.Code)
	}
	var st retrieval.Status
	if err := json.Unmarshal(env.Data, &st); err != nil {
		t.Fatal(err)
	}
	if !st.Ready || st.Primary.Size != 3 {
		t.Errorf("status = %+v", st)
	}
}

func TestRouter_RateLimitSearch(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.Search = RateLimitConfig{Requests: 2, Window: time.Minute}
	h := newTestServer(t, &fakeSearch{ready: true}, nil, nil, cfg)

	for i := 0; i < 2; i++ {
		if rec, _ := do(t, h, http.MethodGet, "/api/v1/search/actors?q=x", "", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
	rec, env := do(t, h, http.MethodGet, "/api/v1/search/actors?q=x", "", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("error = %+v, want TOO_MANY_REQUESTS", env.Error)
	}

	if rec, _ := do(t, h, http.MethodGet, "/api/v1/health/live", "", nil); rec.Code != http.StatusOK {
		t.Errorf("health shares the search budget: status = %d", rec.Code)
	}
}

func TestRouter_Misc(t *testing.T) {
	h := newTestServer(t, &fakeSearch{ready: true}, nil, nil, nil)

	rec, _ := do(t, h, http.MethodGet, "/api/v1/search/actors?q=x", "", nil)
	for _, header := range []string{"X-Content-Type-Options", "X-Frame-Options", "Cache-Control"} {
		if rec.Header().Get(header) == "" {
			t.Errorf("missing header %s", header)
		}
	}

	rec, env := do(t, h, http.MethodGet, "/api/v1/nope", "", nil)
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status = %d, error = %+v", rec.Code, env.Error)
	}

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/search/actors", "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE search: status = %d, want 405", rec.Code)
	}

	rec, _ = do(t, h, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Errorf("/metrics: status = %d", rec.Code)
	}
}
