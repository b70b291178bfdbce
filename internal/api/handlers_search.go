// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/validation"
)

// SearchActors ranks actors by how well their emotional profile matches a
// free-text query.
//
// @Summary Search actors by emotional profile
// @Description Classifies the query into an emotion vector and ranks actors by cosine similarity blended with a fame prior.
// @Description mode=lsa ranks on the latent semantic index instead and falls back to primary when it is not built.
// @Description A POST body may carry the same fields as JSON; query parameters win.
// @Tags Search
// @Accept json
// @Produce json
// @Param q query string false "Free-text query; longer than 2000 characters is truncated"
// @Param mode query string false "Ranking mode" Enums(primary, lsa)
// @Param top_k query int false "Number of results; 0 or less returns all" maximum(1000)
// @Param fame_weight query number false "Fame blend weight" minimum(0) maximum(1)
// @Param hydrate query bool false "Attach actor records"
// @Param request body retrieval.RankRequest false "Search (POST only)"
// @Success 200 {object} APIResponse{data=retrieval.RankResponse} "Ranked actors"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 503 {object} APIResponse "Index not built yet"
// @Router /search/actors [get]
// @Router /search/actors [post]
func (h *Handler) SearchActors(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRankRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	resp, err := h.search.Rank(r.Context(), req)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("mode", req.Mode).Msg("Search failed")
		rw.serviceError(err)
		return
	}

	rw.SuccessWithMeta(resp, &APIMeta{Search: &SearchMeta{
		Mode:          resp.Mode,
		RequestedMode: resp.RequestedMode,
		Count:         len(resp.Results),
		Fallback:      resp.Fallback,
		Degraded:      resp.Degraded,
		Partial:       resp.Partial,
	}})
}
