// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/ranking"
	"github.com/tomtom215/marquee/internal/textproc"
)

// Rank returns the actors best matching req.Query. A blank or unclassifiable
// query never fails; it ranks with a zero vector, which orders by fame alone.
func (s *Service) Rank(ctx context.Context, req RankRequest) (resp *RankResponse, err error) {
	start := time.Now()
	mode := req.Mode
	if mode == "" {
		mode = ModePrimary
	}
	defer func() { metrics.RecordRank(mode, rankOutcome(resp, err), time.Since(start)) }()

	if mode != ModePrimary && mode != ModeLSA {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	topK := s.cfg.DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	alpha := s.cfg.FameWeight
	if req.FameWeight != nil {
		alpha = *req.FameWeight
	}

	resp = &RankResponse{Mode: mode, RequestedMode: mode}

	if mode == ModeLSA {
		if ix := s.lsa.Load(); ix != nil {
			resp.Results = ix.Rank(strings.Fields(textproc.Process(req.Query)), topK)
			resp.IndexBuiltAt = ix.BuiltAt()
		} else {
			resp.Mode = ModePrimary
			resp.Fallback = true
		}
	}

	if resp.Mode == ModePrimary {
		ix, err := s.awaitPrimary(ctx)
		if err != nil {
			return nil, err
		}
		q, degraded := s.queryVector(ctx, req.Query)
		resp.Degraded = degraded
		resp.Results = ranking.Rank(ix, q, topK, alpha)
		resp.IndexBuiltAt = ix.BuiltAt()
	}

	if req.Hydrate && len(resp.Results) > 0 {
		s.hydrate(ctx, resp)
	}
	return resp, nil
}

func rankOutcome(resp *RankResponse, err error) string {
	switch {
	case errors.Is(err, ErrNotReady):
		return "not_ready"
	case err != nil:
		return "error"
	case resp.Fallback:
		return "fallback"
	case resp.Degraded:
		return "degraded"
	case resp.Partial:
		return "partial"
	default:
		return "success"
	}
}

// awaitPrimary returns the published primary index. Before the first build
// it fails with ErrNotReady, or waits when NotReady is NotReadyBlock.
func (s *Service) awaitPrimary(ctx context.Context) (*ranking.EmotionIndex, error) {
	if ix := s.primary.Load(); ix != nil {
		return ix, nil
	}
	if s.cfg.NotReady != NotReadyBlock {
		return nil, ErrNotReady
	}
	select {
	case <-s.ready:
		return s.primary.Load(), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
}

// queryVector classifies the query. Oracle failures and timeouts are
// reported as degraded and yield the zero vector.
func (s *Service) queryVector(ctx context.Context, query string) (models.EmotionVector, bool) {
	key := normalizeQuery(query)
	if key == "" {
		return models.EmotionVector{}, false
	}

	if s.vectors != nil {
		if v, ok := s.vectors.Get(key); ok {
			metrics.RecordQueryVectorCache(true)
			return v, false
		}
		metrics.RecordQueryVectorCache(false)
	}

	logger := logging.Ctx(ctx)
	classifier, err := s.classifiers.Get(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Classification oracle unavailable, ranking with zero query vector")
		return models.EmotionVector{}, true
	}

	qctx := ctx
	if s.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		qctx, cancel = context.WithTimeout(ctx, s.cfg.QueryTimeout)
		defer cancel()
	}

	v, err := ranking.NewQueryVectorizer(classifier, s.thesaurus, s.cfg.ExpansionEnabled).Vectorize(qctx, key)
	if err != nil {
		logger.Warn().Err(err).Msg("Query classification failed, ranking with zero query vector")
		return models.EmotionVector{}, true
	}

	if s.vectors != nil {
		s.vectors.Add(key, v)
	}
	return v, false
}

// normalizeQuery lowercases the query and collapses whitespace.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// hydrate attaches actor records to the results. Failure leaves ids and
// scores in place and marks the response partial.
func (s *Service) hydrate(ctx context.Context, resp *RankResponse) {
	ids := make([]int64, len(resp.Results))
	for i := range resp.Results {
		ids[i] = resp.Results[i].ActorID
	}

	actors, err := s.repo.ActorsByIDs(ctx, ids)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("results", len(ids)).Msg("Actor hydration failed, returning ids only")
		resp.Partial = true
		resp.HydrationError = fmt.Errorf("%w: %w", ErrRepository, err).Error()
		return
	}

	byID := make(map[int64]*models.Actor, len(actors))
	for i := range actors {
		byID[actors[i].ID] = &actors[i]
	}
	for i := range resp.Results {
		resp.Results[i].Actor = byID[resp.Results[i].ActorID]
	}
}
