// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import "time"

// Not-ready behaviors for rank requests that arrive before the first index build.
const (
	NotReadyFailFast = "fail_fast"
	NotReadyBlock    = "block"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Oracle    OracleConfig    `koanf:"oracle"`
	Thesaurus ThesaurusConfig `koanf:"thesaurus"`
	Ranking   RankingConfig   `koanf:"ranking"`
	LSA       LSAConfig       `koanf:"lsa"`
	Index     IndexConfig     `koanf:"index"`
	Events    EventsConfig    `koanf:"events"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// SecurityConfig holds HTTP security settings
type SecurityConfig struct {
	// JWTSecret enables the HS256 bearer token guard on the rebuild endpoint.
	// Empty leaves the endpoint open.
	JWTSecret         string   `koanf:"jwt_secret"`
	CORSOrigins       []string `koanf:"cors_origins"`
	RateLimitDisabled bool     `koanf:"rate_limit_disabled"`
	SearchRateLimit   int      `koanf:"search_rate_limit"`  // requests per minute per IP
	RebuildRateLimit  int      `koanf:"rebuild_rate_limit"` // requests per minute per IP
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()

	// SeedDemoData loads a small demo catalog into an empty database.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// CacheConfig holds the classification cache and query vector cache settings
type CacheConfig struct {
	// ProfilePath is the BadgerDB directory for cached actor classifications.
	// Empty disables the cache.
	ProfilePath    string        `koanf:"profile_path"`
	QueryCacheSize int           `koanf:"query_cache_size"` // 0 disables the query vector cache
	QueryCacheTTL  time.Duration `koanf:"query_cache_ttl"`
}

// OracleConfig selects the emotion classification oracle
type OracleConfig struct {
	Mode              string        `koanf:"mode"` // http or lexicon
	URL               string        `koanf:"url"`
	Timeout           time.Duration `koanf:"timeout"`
	BatchSize         int           `koanf:"batch_size"`
	RequestsPerSecond float64       `koanf:"requests_per_second"` // 0 = unpaced
	Burst             int           `koanf:"burst"`
	LexiconPath       string        `koanf:"lexicon_path"`
	BreakerEnabled    bool          `koanf:"breaker_enabled"`
}

// ThesaurusConfig holds query expansion settings
type ThesaurusConfig struct {
	Path string `koanf:"path"` // empty uses the built-in thesaurus
}

// RankingConfig holds primary ranking settings
type RankingConfig struct {
	FameMax          float64       `koanf:"fame_max"`
	FameMin          float64       `koanf:"fame_min"`
	FameWeight       float64       `koanf:"fame_weight"` // default alpha when a request omits it
	DefaultTopK      int           `koanf:"default_top_k"`
	ExpansionEnabled bool          `koanf:"expansion_enabled"`
	QueryTimeout     time.Duration `koanf:"query_timeout"`
	NotReady         string        `koanf:"not_ready"` // fail_fast or block
}

// LSAConfig holds secondary index settings
type LSAConfig struct {
	Enabled         bool    `koanf:"enabled"`
	EnergyThreshold float64 `koanf:"energy_threshold"`
}

// IndexConfig holds index build settings
type IndexConfig struct {
	BuildOnStartup    bool          `koanf:"build_on_startup"`
	RebuildInterval   time.Duration `koanf:"rebuild_interval"` // 0 disables periodic rebuilds
	Workers           int           `koanf:"workers"`          // 0 = runtime.NumCPU()
	ChunkWords        int           `koanf:"chunk_words"`
	RepositoryRetries int           `koanf:"repository_retries"`
	RetryDelay        time.Duration `koanf:"retry_delay"`
}

// EventsConfig holds event bus settings
type EventsConfig struct {
	// NATSURL enables forwarding of index.rebuilt events. Empty disables it.
	NATSURL    string `koanf:"nats_url"`
	NATSPrefix string `koanf:"nats_prefix"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
