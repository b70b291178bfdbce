// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/retrieval"
)

// IndexBuilder is implemented by *retrieval.Service.
type IndexBuilder interface {
	Rebuild(ctx context.Context, req retrieval.RebuildRequest) (*retrieval.BuildResult, error)
	Ready() bool
}

// IndexServiceConfig configures IndexService.
type IndexServiceConfig struct {
	// BuildOnStartup builds every index when the service first starts.
	BuildOnStartup bool
	// RebuildInterval schedules rebuilds of every index; 0 disables them.
	RebuildInterval time.Duration
	// BuildTimeout bounds a single build; 0 means unbounded.
	BuildTimeout time.Duration
}

// IndexService builds the indexes at startup and refreshes them on a timer.
//
// If the startup build fails while no index has ever been published, Serve
// returns suture.ErrTerminateSupervisorTree: the server has nothing to serve.
type IndexService struct {
	builder IndexBuilder
	config  IndexServiceConfig
	logger  zerolog.Logger
}

// NewIndexService creates the service.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewIndexService(builder IndexBuilder, cfg IndexServiceConfig, logger zerolog.Logger) *IndexService {
	return &IndexService{
		builder: builder,
		config:  cfg,
		logger:  logger.With().Str("service", "index").Logger(),
	}
}

// Serve implements suture.Service.
func (s *IndexService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("build_on_startup", s.config.BuildOnStartup).
		Dur("rebuild_interval", s.config.RebuildInterval).
		Msg("Index service starting")

	// A restarted service finds the index already published and skips this.
	if s.config.BuildOnStartup && !s.builder.Ready() {
		err := s.build(ctx, "startup")
		switch {
		case err == nil, errors.Is(err, retrieval.ErrBuildInProgress):
		case ctx.Err() != nil:
			return ctx.Err()
		case !s.builder.Ready():
			s.logger.Error().Err(err).Msg("Initial index build failed with no index to serve, stopping")
			return suture.ErrTerminateSupervisorTree
		}
	}

	if s.config.RebuildInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RebuildInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Index service shutting down")
			return ctx.Err()
		case <-ticker.C:
			_ = s.build(ctx, "scheduled")
		}
	}
}

func (s *IndexService) build(ctx context.Context, trigger string) error {
	if s.config.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.BuildTimeout)
		defer cancel()
	}

	result, err := s.builder.Rebuild(ctx, retrieval.RebuildRequest{Mode: retrieval.ModeAll})
	switch {
	case errors.Is(err, retrieval.ErrBuildInProgress):
		s.logger.Debug().Str("trigger", trigger).Msg("Rebuild already running, skipped")
	case err != nil:
		s.logger.Warn().Err(err).Str("trigger", trigger).Msg("Index rebuild failed, previous index keeps serving")
	default:
		s.logger.Info().Str("trigger", trigger).Int("primary_size", result.PrimarySize).Dur("duration", result.Duration).Msg("Index rebuilt")
	}
	return err
}

func (s *IndexService) String() string {
	return "index-service"
}
