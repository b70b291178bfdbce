// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateDatabase,
		c.validateCache,
		c.validateOracle,
		c.validateRanking,
		c.validateLSA,
		c.validateIndex,
		c.validateEvents,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got: %s", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.JWTSecret != "" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.IsProduction() && c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENVIRONMENT=production")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.SearchRateLimit < 1 {
			return fmt.Errorf("SEARCH_RATE_LIMIT must be at least 1")
		}
		if c.Security.RebuildRateLimit < 1 {
			return fmt.Errorf("REBUILD_RATE_LIMIT must be at least 1")
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.QueryCacheSize < 0 {
		return fmt.Errorf("QUERY_CACHE_SIZE must not be negative")
	}
	if c.Cache.QueryCacheSize > 0 && c.Cache.QueryCacheTTL <= 0 {
		return fmt.Errorf("QUERY_CACHE_TTL must be positive when the query cache is enabled")
	}
	return nil
}

func (c *Config) validateOracle() error {
	switch c.Oracle.Mode {
	case "lexicon":
		return nil
	case "http":
		if c.Oracle.URL == "" {
			return fmt.Errorf("ORACLE_URL is required when ORACLE_MODE=http")
		}
		if err := validateHTTPURL(c.Oracle.URL, "ORACLE_URL"); err != nil {
			return err
		}
		if c.Oracle.BatchSize < 1 {
			return fmt.Errorf("ORACLE_BATCH_SIZE must be at least 1")
		}
		if c.Oracle.RequestsPerSecond < 0 {
			return fmt.Errorf("ORACLE_RPS must not be negative")
		}
		return nil
	default:
		return fmt.Errorf("ORACLE_MODE must be http or lexicon, got: %s", c.Oracle.Mode)
	}
}

func (c *Config) validateRanking() error {
	r := c.Ranking
	if r.FameMin > r.FameMax {
		return fmt.Errorf("FAME_MIN (%g) must not exceed FAME_MAX (%g)", r.FameMin, r.FameMax)
	}
	if r.FameWeight < 0 || r.FameWeight > 1 {
		return fmt.Errorf("FAME_WEIGHT must be between 0 and 1")
	}
	if r.QueryTimeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be positive")
	}
	switch r.NotReady {
	case NotReadyFailFast, NotReadyBlock:
	default:
		return fmt.Errorf("NOT_READY_MODE must be %s or %s, got: %s", NotReadyFailFast, NotReadyBlock, r.NotReady)
	}
	return nil
}

func (c *Config) validateLSA() error {
	if c.LSA.EnergyThreshold <= 0 || c.LSA.EnergyThreshold > 1 {
		return fmt.Errorf("LSA_ENERGY_THRESHOLD must be in (0, 1]")
	}
	return nil
}

func (c *Config) validateIndex() error {
	if c.Index.Workers < 0 {
		return fmt.Errorf("INDEX_WORKERS must not be negative")
	}
	if c.Index.ChunkWords < 1 {
		return fmt.Errorf("INDEX_CHUNK_WORDS must be at least 1")
	}
	if c.Index.RepositoryRetries < 0 {
		return fmt.Errorf("INDEX_REPOSITORY_RETRIES must not be negative")
	}
	if c.Index.RebuildInterval < 0 {
		return fmt.Errorf("INDEX_REBUILD_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.NATSURL == "" {
		return nil
	}
	if err := validateNATSURL(c.Events.NATSURL); err != nil {
		return fmt.Errorf("NATS_URL is invalid: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}
