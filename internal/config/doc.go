// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, located by CONFIG_PATH or DefaultConfigPaths
 3. Environment variables listed in envMappings

# Configuration Structure

  - ServerConfig: HTTP listener and shutdown timing
  - SecurityConfig: JWT guard for index rebuilds, CORS, rate limits
  - DatabaseConfig: DuckDB path and tuning
  - CacheConfig: BadgerDB classification cache and the query vector LRU
  - OracleConfig: emotion classifier selection (http or lexicon)
  - ThesaurusConfig: synonym source for query expansion
  - RankingConfig: fame bounds, blend weight, top_k, not-ready behavior
  - LSAConfig: secondary index toggle and SVD energy threshold
  - IndexConfig: build scheduling, worker count, chunking, retries
  - EventsConfig: optional NATS forwarding of rebuild events
  - LoggingConfig: zerolog level and format

# Environment Variables

Frequently used variables:

  - HTTP_PORT: listen port (default: 8080)
  - DUCKDB_PATH: database file (default: /data/marquee.duckdb)
  - ORACLE_MODE, ORACLE_URL: classifier selection
  - FAME_MAX, FAME_MIN, FAME_WEIGHT: fame prior and blend
  - LSA_ENABLED: build the token LSA index (default: false)
  - NOT_READY_MODE: fail_fast or block
  - JWT_SECRET: protects POST /api/v1/index/rebuild
  - LOG_LEVEL, LOG_FORMAT

Comma-separated values are accepted for list settings such as CORS_ORIGINS.

# Validation

Load returns an error naming the offending variable when a value is out of
range, for example a FAME_MIN above FAME_MAX or an unknown ORACLE_MODE.
*/
package config
