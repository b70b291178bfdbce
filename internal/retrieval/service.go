// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/lsa"
	"github.com/tomtom215/marquee/internal/ranking"
)

// Service builds and serves the actor indexes. It is safe for concurrent use.
type Service struct {
	cfg         Config
	repo        Repository
	classifiers ClassifierSource
	thesaurus   ranking.Thesaurus
	profiles    ProfileCache
	vectors     VectorCache
	notifier    Notifier
	logger      zerolog.Logger

	primary atomic.Pointer[ranking.EmotionIndex]
	lsa     atomic.Pointer[lsa.Index]

	buildMu   sync.Mutex
	building  atomic.Bool
	ready     chan struct{}
	readyOnce sync.Once

	statusMu  sync.RWMutex
	builds    int64
	lastBuild BuildResult
	lastErr   string
	lsaErr    string
}

// Option configures optional collaborators of a Service.
type Option func(*Service)

// WithThesaurus enables query expansion through th.
func WithThesaurus(th ranking.Thesaurus) Option {
	return func(s *Service) { s.thesaurus = th }
}

// WithProfileCache reuses classified profiles across rebuilds.
func WithProfileCache(c ProfileCache) Option {
	return func(s *Service) { s.profiles = c }
}

// WithVectorCache caches query vectors.
func WithVectorCache(c VectorCache) Option {
	return func(s *Service) { s.vectors = c }
}

// WithNotifier reports successful rebuilds to n.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithLogger overrides the service logger.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service. No index is built until Rebuild is called.
func New(cfg Config, repo Repository, classifiers ClassifierSource, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, errors.New("retrieval: repository is required")
	}
	if classifiers == nil {
		return nil, errors.New("retrieval: classifier source is required")
	}
	if err := cfg.Fame.Validate(); err != nil {
		return nil, fmt.Errorf("retrieval: %w", err)
	}
	switch cfg.NotReady {
	case "":
		cfg.NotReady = NotReadyFailFast
	case NotReadyFailFast, NotReadyBlock:
	default:
		return nil, fmt.Errorf("retrieval: unknown not-ready mode %q", cfg.NotReady)
	}
	if cfg.RepositoryRetries < 0 {
		cfg.RepositoryRetries = 0
	}

	s := &Service{
		cfg:         cfg,
		repo:        repo,
		classifiers: classifiers,
		logger:      logging.Logger(),
		ready:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "retrieval").Logger()
	return s, nil
}

// Ready reports whether the primary index has been published.
func (s *Service) Ready() bool {
	return s.primary.Load() != nil
}

// Building reports whether a rebuild is running.
func (s *Service) Building() bool {
	return s.building.Load()
}

// WaitReady returns a channel closed once the primary index is published.
func (s *Service) WaitReady() <-chan struct{} {
	return s.ready
}

func (s *Service) publishPrimary(ix *ranking.EmotionIndex) {
	s.primary.Store(ix)
	s.readyOnce.Do(func() { close(s.ready) })
}

// Status returns a snapshot of the service state.
func (s *Service) Status() Status {
	st := Status{
		Ready:        s.Ready(),
		Building:     s.Building(),
		OracleLoaded: s.classifiers.Loaded(),
	}
	if ix := s.primary.Load(); ix != nil {
		st.Primary = IndexStatus{Size: ix.Len(), BuiltAt: ix.BuiltAt()}
	}
	st.LSA.Enabled = s.cfg.LSAEnabled
	if ix := s.lsa.Load(); ix != nil {
		st.LSA.IndexStatus = IndexStatus{Size: ix.Len(), BuiltAt: ix.BuiltAt()}
		st.LSA.Rank = ix.K()
		st.LSA.Vocabulary = ix.VocabularySize()
	}

	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	st.Builds = s.builds
	st.LastBuildAt = s.lastBuild.BuiltAt
	st.LastBuildDuration = s.lastBuild.Duration
	st.LastError = s.lastErr
	st.LSA.LastError = s.lsaErr
	return st
}

func (s *Service) recordBuild(result *BuildResult, err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.builds++
	s.lastBuild = *result
	s.lastErr = ""
}

func (s *Service) setLSAError(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if err == nil {
		s.lsaErr = ""
		return
	}
	s.lsaErr = err.Error()
}

func elapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
