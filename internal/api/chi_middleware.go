// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// ChiMiddlewareConfig configures CORS and rate limiting.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSExposedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitDisabled bool
	Search            RateLimitConfig
	Rebuild           RateLimitConfig
	Health            RateLimitConfig
}

// RateLimitConfig is a per-IP request budget.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Default per-IP budgets
var (
	RateLimitSearch  = RateLimitConfig{Requests: 30, Window: time.Minute}
	RateLimitRebuild = RateLimitConfig{Requests: 5, Window: time.Minute}
	RateLimitHealth  = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

// DefaultChiMiddlewareConfig returns the defaults. CORS origins are empty, so
// browsers on other origins are refused until configured.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		CORSExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		CORSMaxAge:         86400,

		Search:  RateLimitSearch,
		Rebuild: RateLimitRebuild,
		Health:  RateLimitHealth,
	}
}

// ChiMiddleware builds the router middleware from a config.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware set; nil uses the defaults.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	return &ChiMiddleware{
		config: config,
		cors: cors.Handler(cors.Options{
			AllowedOrigins: config.CORSAllowedOrigins,
			AllowedMethods: config.CORSAllowedMethods,
			AllowedHeaders: config.CORSAllowedHeaders,
			ExposedHeaders: config.CORSExposedHeaders,
			MaxAge:         config.CORSMaxAge,
		}),
	}
}

// CORS returns the go-chi/cors handler.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitSearch limits search requests per IP.
func (m *ChiMiddleware) RateLimitSearch() func(http.Handler) http.Handler {
	return m.rateLimit(m.config.Search)
}

// RateLimitRebuild limits rebuild requests per IP.
func (m *ChiMiddleware) RateLimitRebuild() func(http.Handler) http.Handler {
	return m.rateLimit(m.config.Rebuild)
}

// RateLimitHealth limits probe requests per IP.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.rateLimit(m.config.Health)
}

func (m *ChiMiddleware) rateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled || cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(cfg.Requests, cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Rate limit exceeded, retry later")
}

// APISecurityHeaders sets conservative headers on API responses. HSTS is
// added only for HTTPS requests, including behind a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Cache-Control", "no-store")
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
