// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probes.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is up, regardless of index state.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probes.
//
// @Summary Readiness probe
// @Description Returns 200 once the primary index has been built, 503 before.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Index not built yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.search.Ready() {
		rw.ServiceUnavailable(ErrCodeNotReady, "The search index has not been built yet")
		return
	}
	rw.Success(map[string]interface{}{
		"ready":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
