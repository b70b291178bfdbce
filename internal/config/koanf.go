// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			CORSOrigins:      []string{"*"},
			SearchRateLimit:  30,
			RebuildRateLimit: 5,
		},
		Database: DatabaseConfig{
			Path:      "/data/marquee.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Cache: CacheConfig{
			ProfilePath:    "/data/profiles",
			QueryCacheSize: 1024,
			QueryCacheTTL:  time.Hour,
		},
		Oracle: OracleConfig{
			Mode:           "lexicon",
			Timeout:        30 * time.Second,
			BatchSize:      32,
			Burst:          1,
			BreakerEnabled: true,
		},
		Ranking: RankingConfig{
			FameMax:          1.2,
			FameMin:          0.2,
			FameWeight:       0.3,
			DefaultTopK:      10,
			ExpansionEnabled: false,
			QueryTimeout:     5 * time.Second,
			NotReady:         NotReadyFailFast,
		},
		LSA: LSAConfig{
			Enabled:         false,
			EnergyThreshold: 0.9,
		},
		Index: IndexConfig{
			BuildOnStartup:    true,
			RebuildInterval:   0,
			Workers:           0,
			ChunkWords:        300,
			RepositoryRetries: 3,
			RetryDelay:        time.Second,
		},
		Events: EventsConfig{
			NATSPrefix: "marquee",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration with layered sources:
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any mapped setting
//
// Precedence is ENV > File > Defaults.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile loads configuration with the given YAML file as the file layer.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unmapped variables are ignored so unrelated environment does not leak in.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Security
	"jwt_secret":         "security.jwt_secret",
	"cors_origins":       "security.cors_origins",
	"disable_rate_limit": "security.rate_limit_disabled",
	"search_rate_limit":  "security.search_rate_limit",
	"rebuild_rate_limit": "security.rebuild_rate_limit",

	// Database
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"seed_demo_data":    "database.seed_demo_data",

	// Cache
	"profile_cache_path": "cache.profile_path",
	"query_cache_size":   "cache.query_cache_size",
	"query_cache_ttl":    "cache.query_cache_ttl",

	// Oracle
	"oracle_mode":            "oracle.mode",
	"oracle_url":             "oracle.url",
	"oracle_timeout":         "oracle.timeout",
	"oracle_batch_size":      "oracle.batch_size",
	"oracle_rps":             "oracle.requests_per_second",
	"oracle_burst":           "oracle.burst",
	"oracle_lexicon_path":    "oracle.lexicon_path",
	"oracle_breaker_enabled": "oracle.breaker_enabled",

	// Thesaurus
	"thesaurus_path": "thesaurus.path",

	// Ranking
	"fame_max":          "ranking.fame_max",
	"fame_min":          "ranking.fame_min",
	"fame_weight":       "ranking.fame_weight",
	"default_top_k":     "ranking.default_top_k",
	"expansion_enabled": "ranking.expansion_enabled",
	"query_timeout":     "ranking.query_timeout",
	"not_ready_mode":    "ranking.not_ready",

	// LSA
	"lsa_enabled":          "lsa.enabled",
	"lsa_energy_threshold": "lsa.energy_threshold",

	// Index
	"index_build_on_startup":   "index.build_on_startup",
	"index_rebuild_interval":   "index.rebuild_interval",
	"index_workers":            "index.workers",
	"index_chunk_words":        "index.chunk_words",
	"index_repository_retries": "index.repository_retries",
	"index_retry_delay":        "index.retry_delay",

	// Events
	"nats_url":    "events.nats_url",
	"nats_prefix": "events.nats_prefix",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - ORACLE_URL -> oracle.url
//   - FAME_MAX -> ranking.fame_max
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
