// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/middleware"
)

// Router assembles handlers and middleware into the HTTP API.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	jwt           *auth.JWTManager
}

// NewRouter creates a router. A nil jwt manager leaves the rebuild endpoint
// unauthenticated.
func NewRouter(handler *Handler, mw *ChiMiddleware, jwt *auth.JWTManager) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, jwt: jwt}
}

// SetupChi builds the route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Route("/search", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitSearch())
			r.Use(middleware.Compression)
			r.Get("/actors", router.handler.SearchActors)
			r.Post("/actors", router.handler.SearchActors)
		})

		r.Route("/index", func(r chi.Router) {
			r.Get("/status", router.handler.IndexStatus)
			r.With(
				router.chiMiddleware.RateLimitRebuild(),
				auth.RequireRole(router.jwt, auth.RoleAdmin),
			).Post("/rebuild", router.handler.IndexRebuild)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
