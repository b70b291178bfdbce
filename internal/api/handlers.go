// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/retrieval"
)

// SearchService is the part of retrieval.Service the handlers use.
type SearchService interface {
	Rank(ctx context.Context, req retrieval.RankRequest) (*retrieval.RankResponse, error)
	Rebuild(ctx context.Context, req retrieval.RebuildRequest) (*retrieval.BuildResult, error)
	Status() retrieval.Status
	Ready() bool
}

// RebuildPublisher queues a rebuild for a background worker and returns the
// event id.
type RebuildPublisher interface {
	RequestRebuild(ctx context.Context, req retrieval.RebuildRequest) (string, error)
}

// Handler serves the HTTP API.
type Handler struct {
	search    SearchService
	rebuilds  RebuildPublisher
	startTime time.Time
}

// NewHandler creates a handler. A nil rebuilds publisher makes async rebuild
// requests run synchronously.
func NewHandler(search SearchService, rebuilds RebuildPublisher) *Handler {
	return &Handler{
		search:    search,
		rebuilds:  rebuilds,
		startTime: time.Now(),
	}
}
