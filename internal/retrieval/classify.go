// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/oracle"
	"github.com/tomtom215/marquee/internal/ranking"
	"github.com/tomtom215/marquee/internal/textproc"
)

type classifyOutcome struct {
	classified   []models.EmotionProfile
	fingerprints map[int64]uint64
	fresh        int
	reused       int
}

type actorProfile struct {
	profile     models.EmotionProfile
	fingerprint uint64
}

// classifyActors classifies every actor that needs a fresh profile. An actor
// is skipped when reclassify is false and either the profile cache holds a
// profile for its current dialogue fingerprint or, without a cache, stored
// already contains it.
//
// Workers send one result per actor on a buffered channel; results are
// merged after the group finishes and returned sorted by actor id.
func (s *Service) classifyActors(ctx context.Context, classifier oracle.Classifier, dialogues []models.ActorDialogue, reclassify bool, stored map[int64]struct{}) (classifyOutcome, error) {
	out := classifyOutcome{fingerprints: make(map[int64]uint64)}

	var pending []models.ActorDialogue
	var reused []models.EmotionProfile
	for i := range dialogues {
		d := dialogues[i]
		if len(d.Dialogue) == 0 {
			continue
		}
		if !reclassify {
			if s.profiles != nil {
				fp := cache.Fingerprint(d.Dialogue)
				p, ok, err := s.profiles.Get(d.ActorID, fp)
				if err != nil {
					s.logger.Warn().Err(err).Int64("actor_id", d.ActorID).Msg("Profile cache lookup failed")
				}
				if ok {
					reused = append(reused, *p)
					out.fingerprints[d.ActorID] = fp
					continue
				}
			} else if _, ok := stored[d.ActorID]; ok {
				out.reused++
				continue
			}
		}
		pending = append(pending, d)
	}

	// Cached profiles may be missing from the repository, so they are saved
	// along with fresh ones.
	out.reused += len(reused)
	metrics.RecordClassified("cache", out.reused)
	if len(pending) == 0 {
		out.classified = reused
		return out, nil
	}

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	results := make(chan actorProfile, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pending {
		d := pending[i]
		g.Go(func() error {
			v, err := s.classifyDialogue(gctx, classifier, d.Dialogue)
			if err != nil {
				return fmt.Errorf("classify actor %d: %w: %w", d.ActorID, ErrOracleUnavailable, err)
			}
			results <- actorProfile{
				profile:     models.NewEmotionProfile(d.ActorID, v, time.Now().UTC()),
				fingerprint: cache.Fingerprint(d.Dialogue),
			}
			return nil
		})
	}
	err := g.Wait()
	close(results)
	if err != nil {
		return out, err
	}

	for r := range results {
		out.classified = append(out.classified, r.profile)
		out.fingerprints[r.profile.ActorID] = r.fingerprint
		out.fresh++
	}
	metrics.RecordClassified("oracle", out.fresh)
	s.logger.Info().
		Int("classified", out.fresh).
		Int("reused", out.reused).
		Int("workers", workers).
		Int64("duration_ms", elapsedMS(start)).
		Msg("Actor classification complete")

	out.classified = append(out.classified, reused...)
	sort.Slice(out.classified, func(i, j int) bool { return out.classified[i].ActorID < out.classified[j].ActorID })
	return out, nil
}

// classifyDialogue chunks an actor's dialogue and averages the classifier
// output over the chunks.
func (s *Service) classifyDialogue(ctx context.Context, classifier oracle.Classifier, dialogue []string) (models.EmotionVector, error) {
	segments := textproc.ChunkAll(dialogue, s.cfg.ChunkWords)
	if len(segments) == 0 {
		return models.EmotionVector{}, nil
	}
	scores, err := classifier.Classify(ctx, segments)
	if err != nil {
		return models.EmotionVector{}, err
	}
	return ranking.Aggregate(scores), nil
}
