// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package evaluation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/retrieval"
)

// HTTPRanker ranks queries through a running server's search endpoint.
type HTTPRanker struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPRanker creates a client for the server at baseURL. token, when set,
// is sent as a bearer token.
func NewHTTPRanker(baseURL, token string, timeout time.Duration) *HTTPRanker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPRanker{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Rank implements Ranker.
func (c *HTTPRanker) Rank(ctx context.Context, req retrieval.RankRequest) (*retrieval.RankResponse, error) {
	q := url.Values{}
	q.Set("q", req.Query)
	if req.Mode != "" {
		q.Set("mode", req.Mode)
	}
	if req.TopK != nil {
		q.Set("top_k", strconv.Itoa(*req.TopK))
	}
	if req.FameWeight != nil {
		q.Set("fame_weight", strconv.FormatFloat(*req.FameWeight, 'f', -1, 64))
	}
	return do[retrieval.RankResponse](ctx, c, http.MethodGet, "/api/v1/search/actors", q, "search")
}

// Rebuild runs a synchronous index rebuild on the server. The endpoint needs
// an admin token when the server has a JWT secret.
func (c *HTTPRanker) Rebuild(ctx context.Context, req retrieval.RebuildRequest) (*retrieval.BuildResult, error) {
	q := url.Values{}
	if req.Mode != "" {
		q.Set("mode", req.Mode)
	}
	if req.Reclassify {
		q.Set("reclassify", "true")
	}
	return do[retrieval.BuildResult](ctx, c, http.MethodPost, "/api/v1/index/rebuild", q, "rebuild")
}

func do[T any](ctx context.Context, c *HTTPRanker, method, path string, q url.Values, op string) (*T, error) {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", op, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success || env.Data == nil {
		if env.Error != nil {
			return nil, fmt.Errorf("%s returned status %d: %s: %s", op, resp.StatusCode, env.Error.Code, env.Error.Message)
		}
		return nil, fmt.Errorf("%s returned status %d", op, resp.StatusCode)
	}
	return env.Data, nil
}
