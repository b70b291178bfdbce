// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/lsa"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/ranking"
	"github.com/tomtom215/marquee/internal/textproc"
)

// Rebuild rebuilds the indexes selected by req.Mode (default ModeAll).
// It returns ErrBuildInProgress immediately if another rebuild is running.
// On failure the previously published indexes keep serving.
//
// In ModeAll an LSA failure after the primary index is published is logged,
// recorded in Status and BuildResult.LSAError, and does not fail the rebuild;
// in ModeLSA it does.
func (s *Service) Rebuild(ctx context.Context, req RebuildRequest) (*BuildResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = ModeAll
	}
	switch mode {
	case ModePrimary, ModeAll:
	case ModeLSA:
		if !s.cfg.LSAEnabled {
			return nil, fmt.Errorf("%w: lsa index is disabled", ErrInvalidMode)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	if !s.buildMu.TryLock() {
		return nil, ErrBuildInProgress
	}
	defer s.buildMu.Unlock()
	s.building.Store(true)
	defer s.building.Store(false)

	start := time.Now()
	s.logger.Info().Str("mode", mode).Bool("reclassify", req.Reclassify).Msg("Starting index rebuild")

	result := &BuildResult{Mode: mode}
	err := s.build(ctx, mode, req.Reclassify, result)
	result.Duration = time.Since(start)
	result.BuiltAt = time.Now()
	s.recordBuild(result, err)
	if err != nil {
		s.logger.Error().Err(err).Str("mode", mode).Int64("duration_ms", elapsedMS(start)).Msg("Index rebuild failed")
		return nil, err
	}

	s.logger.Info().
		Str("mode", mode).
		Int("primary_size", result.PrimarySize).
		Int("lsa_size", result.LSASize).
		Int("lsa_rank", result.LSARank).
		Int("classified", result.Classified).
		Int("reused", result.Reused).
		Int64("duration_ms", elapsedMS(start)).
		Msg("Index rebuild complete")

	if s.notifier != nil {
		s.notifier.IndexRebuilt(ctx, *result)
	}
	return result, nil
}

func (s *Service) build(ctx context.Context, mode string, reclassify bool, result *BuildResult) error {
	if mode != ModeLSA {
		// The oracle is loaded before any repository work so a missing
		// classifier fails fast.
		if _, err := s.classifiers.Get(ctx); err != nil {
			// Forget the failed load so the next rebuild tries again.
			if r, ok := s.classifiers.(resetter); ok {
				r.Reset()
			}
			return fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
		}
	}

	if err := s.preprocess(ctx); err != nil {
		return err
	}

	if mode != ModeLSA {
		if err := s.buildPrimary(ctx, reclassify, result); err != nil {
			return err
		}
	}

	if mode == ModeLSA || (mode == ModeAll && s.cfg.LSAEnabled) {
		err := s.buildLSA(ctx, result)
		if err != nil && mode == ModeAll {
			level := zerolog.WarnLevel
			if !errors.Is(err, lsa.ErrSingularReduction) {
				level = zerolog.ErrorLevel
			}
			s.logger.WithLevel(level).Err(err).Msg("LSA index not published, previous LSA index keeps serving")
			result.LSAError = err.Error()
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) preprocess(ctx context.Context) error {
	p := textproc.NewPreprocessor(s.repo, s.logger)
	_, err := withRetry(ctx, s, "preprocess dialogue", p.Run)
	return err
}

func (s *Service) buildPrimary(ctx context.Context, reclassify bool, result *BuildResult) (err error) {
	start := time.Now()
	size := 0
	defer func() { metrics.RecordIndexBuild(metrics.IndexPrimary, time.Since(start), size, err) }()

	classifier, err := s.classifiers.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	dialogues, err := withRetry(ctx, s, "load actor dialogue", s.repo.ActorDialogues)
	if err != nil {
		return err
	}

	var stored map[int64]struct{}
	if !reclassify && s.profiles == nil {
		existing, err := withRetry(ctx, s, "load stored profiles", s.repo.ClassifiedActors)
		if err != nil {
			return err
		}
		stored = make(map[int64]struct{}, len(existing))
		for i := range existing {
			stored[existing[i].ActorID] = struct{}{}
		}
	}

	outcome, err := s.classifyActors(ctx, classifier, dialogues, reclassify, stored)
	if err != nil {
		return err
	}
	result.Classified = outcome.fresh
	result.Reused = outcome.reused

	if reclassify && s.profiles != nil {
		if err := s.profiles.Clear(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to clear profile cache")
		}
	}

	if len(outcome.classified) > 0 {
		_, err := withRetry(ctx, s, "save emotion profiles", func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repo.SaveEmotionProfiles(ctx, outcome.classified)
		})
		if err != nil {
			return err
		}
		if s.profiles != nil {
			if err := s.profiles.Put(outcome.classified, outcome.fingerprints); err != nil {
				s.logger.Warn().Err(err).Msg("Failed to cache emotion profiles")
			}
		}
	}

	profiles, err := withRetry(ctx, s, "load classified actors", s.repo.ClassifiedActors)
	if err != nil {
		return err
	}
	counts, err := withRetry(ctx, s, "load role counts", s.repo.ActorRoleCounts)
	if err != nil {
		return err
	}

	ix := ranking.BuildPrimaryIndex(profiles, counts, s.cfg.Fame)
	s.publishPrimary(ix)
	size = ix.Len()
	result.PrimarySize = size
	return nil
}

func (s *Service) buildLSA(ctx context.Context, result *BuildResult) (err error) {
	start := time.Now()
	size := 0
	defer func() { metrics.RecordIndexBuild(metrics.IndexLSA, time.Since(start), size, err) }()

	docs, err := withRetry(ctx, s, "load actor tokens", s.repo.ActorTokens)
	if err != nil {
		s.setLSAError(err)
		return err
	}

	ix, err := lsa.Build(ctx, docs, s.cfg.LSA)
	if err != nil {
		err = fmt.Errorf("build lsa index: %w", err)
		s.setLSAError(err)
		return err
	}
	s.lsa.Store(ix)
	s.setLSAError(nil)

	size = ix.Len()
	result.LSASize = size
	result.LSARank = ix.K()
	return nil
}

// withRetry runs fn, retrying failures RepositoryRetries times with a
// doubling delay. The final error wraps ErrRepository.
func withRetry[T any](ctx context.Context, s *Service, op string, fn func(context.Context) (T, error)) (T, error) {
	delay := s.cfg.RetryDelay
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		var zero T
		if ctx.Err() != nil {
			return zero, fmt.Errorf("%s: %w", op, ctx.Err())
		}
		if attempt >= s.cfg.RepositoryRetries {
			return zero, fmt.Errorf("%s: %w: %w", op, ErrRepository, err)
		}

		s.logger.Warn().Err(err).Str("op", op).Int("attempt", attempt+1).Dur("retry_in", delay).Msg("Repository call failed, retrying")
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, fmt.Errorf("%s: %w", op, ctx.Err())
			case <-timer.C:
			}
			delay *= 2
		}
	}
}
