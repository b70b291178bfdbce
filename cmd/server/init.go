// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/lsa"
	"github.com/tomtom215/marquee/internal/oracle"
	"github.com/tomtom215/marquee/internal/ranking"
	"github.com/tomtom215/marquee/internal/retrieval"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	"github.com/tomtom215/marquee/internal/thesaurus"
)

func retrievalConfig(cfg *config.Config) retrieval.Config {
	return retrieval.Config{
		Fame: ranking.FameConfig{
			Max: cfg.Ranking.FameMax,
			Min: cfg.Ranking.FameMin,
		},
		FameWeight:        cfg.Ranking.FameWeight,
		DefaultTopK:       cfg.Ranking.DefaultTopK,
		ExpansionEnabled:  cfg.Ranking.ExpansionEnabled,
		QueryTimeout:      cfg.Ranking.QueryTimeout,
		NotReady:          cfg.Ranking.NotReady,
		LSAEnabled:        cfg.LSA.Enabled,
		LSA:               lsa.Config{EnergyThreshold: cfg.LSA.EnergyThreshold},
		Workers:           cfg.Index.Workers,
		ChunkWords:        cfg.Index.ChunkWords,
		RepositoryRetries: cfg.Index.RepositoryRetries,
		RetryDelay:        cfg.Index.RetryDelay,
	}
}

func oracleConfig(cfg *config.Config) oracle.Config {
	return oracle.Config{
		Mode:              cfg.Oracle.Mode,
		URL:               cfg.Oracle.URL,
		Timeout:           cfg.Oracle.Timeout,
		BatchSize:         cfg.Oracle.BatchSize,
		RequestsPerSecond: cfg.Oracle.RequestsPerSecond,
		Burst:             cfg.Oracle.Burst,
		LexiconPath:       cfg.Oracle.LexiconPath,
		BreakerEnabled:    cfg.Oracle.BreakerEnabled,
	}
}

// middlewareConfig overlays the security settings on the router defaults.
// Zero rate limits keep the defaults.
func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	if cfg.Security.SearchRateLimit > 0 {
		mw.Search = api.RateLimitConfig{Requests: cfg.Security.SearchRateLimit, Window: time.Minute}
	}
	if cfg.Security.RebuildRateLimit > 0 {
		mw.Rebuild = api.RateLimitConfig{Requests: cfg.Security.RebuildRateLimit, Window: time.Minute}
	}
	return mw
}

func indexServiceConfig(cfg *config.Config) services.IndexServiceConfig {
	return services.IndexServiceConfig{
		BuildOnStartup:  cfg.Index.BuildOnStartup,
		RebuildInterval: cfg.Index.RebuildInterval,
	}
}

func treeConfig(cfg *config.Config) supervisor.TreeConfig {
	tc := supervisor.DefaultTreeConfig()
	if cfg.Server.ShutdownTimeout > 0 {
		// Leave the HTTP server room to drain before suture gives up on it.
		tc.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	}
	return tc
}

// loadThesaurus returns the configured thesaurus, or the built-in one when no
// path is set.
func loadThesaurus(cfg *config.Config) (*thesaurus.Thesaurus, error) {
	if cfg.Thesaurus.Path == "" {
		return thesaurus.Builtin(), nil
	}
	return thesaurus.Load(cfg.Thesaurus.Path)
}
