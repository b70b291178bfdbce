// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package oracle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// HTTPConfig configures HTTPClassifier.
type HTTPConfig struct {
	BaseURL           string
	Timeout           time.Duration
	BatchSize         int
	RequestsPerSecond float64
	Burst             int
}

// HTTPClassifier calls a remote inference server:
//
//	POST {base}/classify  {"inputs": ["text", ...]}
//	200 [[{"label": "joy", "score": 0.93}, ...], ...]
//
// Segments are sent in batches of BatchSize; outbound requests are paced by a
// token bucket.
type HTTPClassifier struct {
	baseURL    string
	batchSize  int
	limiter    *rate.Limiter
	httpClient *http.Client
}

type classifyRequest struct {
	Inputs []string `json:"inputs"`
}

// NewHTTPClassifier creates a client. Zero values select defaults: 30s
// timeout, batches of 32, and no pacing.
func NewHTTPClassifier(cfg HTTPConfig) *HTTPClassifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 32
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &HTTPClassifier{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		batchSize:  cfg.BatchSize,
		limiter:    limiter,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Classify implements Classifier.
func (c *HTTPClassifier) Classify(ctx context.Context, segments []string) ([][]models.LabelScore, error) {
	out := make([][]models.LabelScore, 0, len(segments))
	for start := 0; start < len(segments); start += c.batchSize {
		end := min(start+c.batchSize, len(segments))
		batch, err := c.classifyBatch(ctx, segments[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (c *HTTPClassifier) classifyBatch(ctx context.Context, batch []string) (result [][]models.LabelScore, err error) {
	start := time.Now()
	defer func() { metrics.RecordOracleRequest("classify", time.Since(start), err) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("oracle rate limit wait: %w", err)
	}

	body, err := json.Marshal(classifyRequest{Inputs: batch})
	if err != nil {
		return nil, fmt.Errorf("encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle classify request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return nil, fmt.Errorf("oracle classify returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("oracle classify returned status %d: %s", resp.StatusCode, string(msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode oracle response: %w", err)
	}
	if len(result) != len(batch) {
		return nil, fmt.Errorf("oracle returned %d results for %d segments", len(result), len(batch))
	}
	return result, nil
}

// Ping checks that the server is reachable.
func (c *HTTPClassifier) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.RecordOracleRequest("ping", time.Since(start), err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("oracle health request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oracle health returned status %d", resp.StatusCode)
	}
	return nil
}
