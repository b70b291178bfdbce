// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/lsa"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/oracle"
	"github.com/tomtom215/marquee/internal/ranking"
	"github.com/tomtom215/marquee/internal/textproc"
)

// Modes for Rank and Rebuild. ModeAll is only valid for Rebuild.
const (
	ModePrimary = "primary"
	ModeLSA     = "lsa"
	ModeAll     = "all"
)

// Not-ready behaviors.
const (
	NotReadyFailFast = "fail_fast"
	NotReadyBlock    = "block"
)

// Repository is the catalog the service builds its indexes from.
type Repository interface {
	textproc.ScriptStore

	ClassifiedActors(ctx context.Context) ([]models.EmotionProfile, error)
	ActorRoleCounts(ctx context.Context) ([]models.RoleCount, error)
	ActorsByIDs(ctx context.Context, ids []int64) ([]models.Actor, error)
	ActorDialogues(ctx context.Context) ([]models.ActorDialogue, error)
	SaveEmotionProfiles(ctx context.Context, profiles []models.EmotionProfile) error
	ActorTokens(ctx context.Context) ([]models.ActorTokens, error)
}

// ClassifierSource hands out the shared classifier, loading it on first use.
type ClassifierSource interface {
	Get(ctx context.Context) (oracle.Classifier, error)
	Loaded() bool
}

// resetter is implemented by sources that remember a failed load, such as
// oracle.Loader.
type resetter interface {
	Reset()
}

// ProfileCache remembers classified profiles by dialogue fingerprint.
type ProfileCache interface {
	Get(actorID int64, fingerprint uint64) (*models.EmotionProfile, bool, error)
	Put(profiles []models.EmotionProfile, fingerprints map[int64]uint64) error
	Clear() error
}

// VectorCache caches query vectors by normalized query text.
type VectorCache interface {
	Get(key string) (models.EmotionVector, bool)
	Add(key string, v models.EmotionVector)
}

// Notifier is told about every successful rebuild.
type Notifier interface {
	IndexRebuilt(ctx context.Context, result BuildResult)
}

// Config tunes the service.
type Config struct {
	Fame              ranking.FameConfig
	FameWeight        float64 // alpha used when a request does not set one
	DefaultTopK       int
	ExpansionEnabled  bool
	QueryTimeout      time.Duration
	NotReady          string
	LSAEnabled        bool
	LSA               lsa.Config
	Workers           int // 0 = runtime.NumCPU()
	ChunkWords        int
	RepositoryRetries int
	RetryDelay        time.Duration
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		Fame:              ranking.DefaultFameConfig(),
		FameWeight:        0.3,
		DefaultTopK:       ranking.DefaultTopK,
		QueryTimeout:      5 * time.Second,
		NotReady:          NotReadyFailFast,
		LSAEnabled:        false,
		LSA:               lsa.Config{EnergyThreshold: lsa.DefaultEnergyThreshold},
		ChunkWords:        300,
		RepositoryRetries: 3,
		RetryDelay:        time.Second,
	}
}

// RankRequest is one search. Nil TopK and FameWeight select the configured
// defaults; TopK <= 0 returns every match.
type RankRequest struct {
	Query      string   `json:"query"`
	Mode       string   `json:"mode,omitempty" validate:"omitempty,oneof=primary lsa"`
	TopK       *int     `json:"top_k,omitempty" validate:"omitempty,max=1000"`
	FameWeight *float64 `json:"fame_weight,omitempty" validate:"omitempty,min=0,max=1"`
	Hydrate    bool     `json:"hydrate,omitempty"`
}

// RankResponse is an ordered result list plus how it was produced.
type RankResponse struct {
	Results []models.RankedActor `json:"results"`

	// Mode is the engine that produced Results. Fallback is set when lsa
	// was requested but the primary index answered.
	Mode          string `json:"mode"`
	RequestedMode string `json:"requested_mode"`
	Fallback      bool   `json:"fallback,omitempty"`

	// Degraded is set when the query could not be classified and a zero
	// vector was used.
	Degraded bool `json:"degraded,omitempty"`

	// Partial is set when hydration failed; Results still carry ids and scores.
	Partial        bool   `json:"partial,omitempty"`
	HydrationError string `json:"hydration_error,omitempty"`

	IndexBuiltAt time.Time `json:"index_built_at"`
}

// RebuildRequest selects what to rebuild.
type RebuildRequest struct {
	Mode       string `json:"mode" validate:"omitempty,oneof=primary lsa all"`
	Reclassify bool   `json:"reclassify,omitempty"`
}

// BuildResult summarizes a successful rebuild.
type BuildResult struct {
	Mode        string        `json:"mode"`
	Duration    time.Duration `json:"duration"`
	PrimarySize int           `json:"primary_size"`
	LSASize     int           `json:"lsa_size"`
	LSARank     int           `json:"lsa_rank"`
	Classified  int           `json:"classified"`
	Reused      int           `json:"reused"`
	BuiltAt     time.Time     `json:"built_at"`

	// LSAError is set when a ModeAll rebuild published the primary index
	// but not the LSA index.
	LSAError string `json:"lsa_error,omitempty"`
}

// IndexStatus describes one published index.
type IndexStatus struct {
	Size    int       `json:"size"`
	BuiltAt time.Time `json:"built_at,omitempty"`
}

// LSAStatus describes the published LSA index.
type LSAStatus struct {
	IndexStatus
	Enabled    bool   `json:"enabled"`
	Rank       int    `json:"rank"`
	Vocabulary int    `json:"vocabulary"`
	LastError  string `json:"last_error,omitempty"`
}

// Status is a snapshot of the service state.
type Status struct {
	Ready             bool          `json:"ready"`
	Building          bool          `json:"building"`
	OracleLoaded      bool          `json:"oracle_loaded"`
	Primary           IndexStatus   `json:"primary"`
	LSA               LSAStatus     `json:"lsa"`
	Builds            int64         `json:"builds"`
	LastBuildAt       time.Time     `json:"last_build_at,omitempty"`
	LastBuildDuration time.Duration `json:"last_build_duration"`
	LastError         string        `json:"last_error,omitempty"`
}
