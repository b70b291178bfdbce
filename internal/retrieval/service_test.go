// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/oracle"
)

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	mu        sync.Mutex
	actors    map[int64]models.Actor
	dialogues []models.ActorDialogue
	tokens    []models.ActorTokens
	roles     []models.RoleCount
	profiles  map[int64]models.EmotionProfile

	dialogueFailures int // ActorDialogues fails this many times first
	hydrateErr       error
	tokensErr        error
	saves            int
}

func (r *fakeRepo) UnprocessedScripts(context.Context) ([]models.Script, error) {
	return nil, nil
}

func (r *fakeRepo) UpdateProcessedDialogue(context.Context, int64, string) error {
	return nil
}

func (r *fakeRepo) ClassifiedActors(context.Context) ([]models.EmotionProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.EmotionProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActorID < out[j].ActorID })
	return out, nil
}

func (r *fakeRepo) ActorRoleCounts(context.Context) ([]models.RoleCount, error) {
	return r.roles, nil
}

func (r *fakeRepo) ActorsByIDs(_ context.Context, ids []int64) ([]models.Actor, error) {
	if r.hydrateErr != nil {
		return nil, r.hydrateErr
	}
	var out []models.Actor
	for _, id := range ids {
		if a, ok := r.actors[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ActorDialogues(context.Context) ([]models.ActorDialogue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dialogueFailures > 0 {
		r.dialogueFailures--
		return nil, errors.New("connection reset")
	}
	return r.dialogues, nil
}

func (r *fakeRepo) SaveEmotionProfiles(_ context.Context, profiles []models.EmotionProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profiles == nil {
		r.profiles = make(map[int64]models.EmotionProfile)
	}
	for _, p := range profiles {
		r.profiles[p.ActorID] = p
	}
	r.saves++
	return nil
}

func (r *fakeRepo) ActorTokens(context.Context) ([]models.ActorTokens, error) {
	if r.tokensErr != nil {
		return nil, r.tokensErr
	}
	return r.tokens, nil
}

// fakeClassifier maps segments to fixed scores and counts calls.
type fakeClassifier struct {
	scores map[string][]models.LabelScore
	fail   atomic.Bool
	calls  atomic.Int64
	block  chan struct{} // when non-nil, Classify waits for it to close
}

func (c *fakeClassifier) Classify(ctx context.Context, segments []string) ([][]models.LabelScore, error) {
	c.calls.Add(1)
	if c.block != nil {
		select {
		case <-c.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.fail.Load() {
		return nil, errors.New("inference server down")
	}
	out := make([][]models.LabelScore, len(segments))
	for i, s := range segments {
		out[i] = c.scores[s]
	}
	return out, nil
}

// fakeSource is a ClassifierSource with a swappable load error.
type fakeSource struct {
	classifier oracle.Classifier
	mu         sync.Mutex
	err        error
}

func (s *fakeSource) Get(context.Context) (oracle.Classifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.classifier, nil
}

func (s *fakeSource) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err == nil
}

func (s *fakeSource) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// fakeProfileCache is an in-memory ProfileCache.
type fakeProfileCache struct {
	mu      sync.Mutex
	entries map[int64]cachedEntry
}

type cachedEntry struct {
	fp      uint64
	profile models.EmotionProfile
}

func (c *fakeProfileCache) Get(actorID int64, fp uint64) (*models.EmotionProfile, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[actorID]
	if !ok || e.fp != fp {
		return nil, false, nil
	}
	p := e.profile
	return &p, true, nil
}

func (c *fakeProfileCache) Put(profiles []models.EmotionProfile, fps map[int64]uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[int64]cachedEntry)
	}
	for _, p := range profiles {
		c.entries[p.ActorID] = cachedEntry{fp: fps[p.ActorID], profile: p}
	}
	return nil
}

func (c *fakeProfileCache) Clear() error {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	results []BuildResult
}

func (n *recordingNotifier) IndexRebuilt(_ context.Context, r BuildResult) {
	n.mu.Lock()
	n.results = append(n.results, r)
	n.mu.Unlock()
}

func scores(love, joy float64) []models.LabelScore {
	return []models.LabelScore{
		{Label: models.LabelLove, Score: love},
		{Label: models.LabelJoy, Score: joy},
	}
}

// newFixture returns a catalog with actor 1 (A, loving), actor 2 (B,
// joyful) and actor 3 (C, mixed). B has played the most roles.
func newFixture() (*fakeRepo, *fakeClassifier) {
	repo := &fakeRepo{
		actors: map[int64]models.Actor{
			1: {ID: 1, Name: "Ada"},
			2: {ID: 2, Name: "Bo"},
			3: {ID: 3, Name: "Cy"},
		},
		dialogues: []models.ActorDialogue{
			{ActorID: 1, Dialogue: []string{"i adore you"}},
			{ActorID: 2, Dialogue: []string{"what a party"}},
			{ActorID: 3, Dialogue: []string{"so so"}},
		},
		tokens: []models.ActorTokens{
			{ActorID: 1, Tokens: []string{"love", "kiss"}},
			{ActorID: 2, Tokens: []string{"kiss", "war"}},
			{ActorID: 3, Tokens: []string{"love", "war"}},
		},
		roles: []models.RoleCount{
			{ActorID: 2, Roles: 5},
			{ActorID: 1, Roles: 3},
			{ActorID: 3, Roles: 1},
		},
	}
	classifier := &fakeClassifier{scores: map[string][]models.LabelScore{
		"i adore you":      scores(0.9, 0.1),
		"what a party":     scores(0.1, 0.9),
		"so so":            scores(0.5, 0.5),
		"a romantic night": scores(0.8, 0.2),
	}}
	return repo, classifier
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FameWeight = 0
	cfg.Workers = 2
	cfg.RetryDelay = time.Millisecond
	cfg.LSAEnabled = true
	return cfg
}

func newTestService(t *testing.T, cfg Config, repo *fakeRepo, classifier *fakeClassifier, opts ...Option) (*Service, *fakeSource) {
	t.Helper()
	src := &fakeSource{classifier: classifier}
	svc, err := New(cfg, repo, src, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return svc, src
}

func mustRebuild(t *testing.T, svc *Service, req RebuildRequest) *BuildResult {
	t.Helper()
	res, err := svc.Rebuild(context.Background(), req)
	if err != nil {
		t.Fatalf("Rebuild(%+v) error = %v", req, err)
	}
	return res
}

func ids(results []models.RankedActor) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.ActorID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNew_Validation(t *testing.T) {
	repo, classifier := newFixture()
	src := &fakeSource{classifier: classifier}

	tests := []struct {
		name    string
		cfg     func() Config
		repo    Repository
		src     ClassifierSource
		wantErr bool
	}{
		{"valid", testConfig, repo, src, false},
		{"nil repository", testConfig, nil, src, true},
		{"nil classifier source", testConfig, repo, nil, true},
		{"min fame above max", func() Config {
			c := testConfig()
			c.Fame.Min = 2
			c.Fame.Max = 1
			return c
		}, repo, src, true},
		{"unknown not-ready mode", func() Config {
			c := testConfig()
			c.NotReady = "wait"
			return c
		}, repo, src, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg(), tt.repo, tt.src)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
