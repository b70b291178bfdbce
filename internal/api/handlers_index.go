// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/retrieval"
	"github.com/tomtom215/marquee/internal/validation"
)

// RebuildAccepted is returned for queued rebuilds.
type RebuildAccepted struct {
	EventID    string `json:"event_id"`
	Mode       string `json:"mode"`
	Reclassify bool   `json:"reclassify"`
}

// IndexRebuild rebuilds the search indexes.
//
// @Summary Rebuild search indexes
// @Description Reclassifies actors as needed and rebuilds the primary and/or LSA index.
// @Description With async=true the request is queued on the event bus and 202 is returned.
// @Tags Index
// @Produce json
// @Param mode query string false "Indexes to rebuild" Enums(primary, lsa, all) default(all)
// @Param reclassify query bool false "Classify every actor again, ignoring stored profiles"
// @Param async query bool false "Queue the rebuild and return immediately"
// @Success 200 {object} APIResponse{data=retrieval.BuildResult} "Rebuild finished"
// @Success 202 {object} APIResponse{data=RebuildAccepted} "Rebuild queued"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Failure 401 {object} APIResponse "Missing or invalid bearer token"
// @Failure 409 {object} APIResponse "Rebuild already in progress"
// @Failure 503 {object} APIResponse "Classifier or database unavailable"
// @Security BearerAuth
// @Router /index/rebuild [post]
func (h *Handler) IndexRebuild(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, async, err := parseRebuildRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if req.Mode == "" {
		req.Mode = retrieval.ModeAll
	}

	if async && h.rebuilds != nil {
		id, err := h.rebuilds.RequestRebuild(r.Context(), req)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to queue index rebuild")
			rw.InternalError("Failed to queue index rebuild")
			return
		}
		rw.Accepted(RebuildAccepted{EventID: id, Mode: req.Mode, Reclassify: req.Reclassify})
		return
	}

	result, err := h.search.Rebuild(r.Context(), req)
	if err != nil {
		rw.serviceError(err)
		return
	}
	rw.Success(result)
}

// IndexStatus reports index readiness, sizes and the last build.
//
// @Summary Index status
// @Tags Index
// @Produce json
// @Success 200 {object} APIResponse{data=retrieval.Status} "Current status"
// @Router /index/status [get]
func (h *Handler) IndexStatus(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.search.Status())
}
