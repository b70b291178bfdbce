// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee ranks actors by how well the emotional profile of their dialogue
matches a free-text query. Actor dialogue is classified into six emotions
(love, joy, anger, sadness, surprise, fear) by an external oracle or a
built-in lexicon, and the resulting profiles are served from an in-memory
index together with a secondary LSA index over dialogue tokens.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("marquee")
	├── IndexSupervisor ("index-layer")
	│   └── Index service (startup build, periodic rebuilds)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── Rebuild listener (index.rebuild.requested)
	│   └── Event forwarder (optional, NATS)
	└── APISupervisor ("api-layer")
	    └── HTTP server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB catalog, optionally seeded with demo data
 4. Caches: BadgerDB profile store and LRU query vector cache
 5. Oracle: lazily loaded classifier behind a circuit breaker
 6. Retrieval service: primary and LSA indexes
 7. Event bus: Watermill GoChannel, optional NATS forwarding
 8. Supervisor tree and HTTP server

A failed startup build with no index to serve terminates the tree and the
process exits non-zero.

# Configuration

Configuration is loaded via Koanf v2 (ENV > config file > defaults):

	HTTP_PORT=8080               # HTTP server port
	DUCKDB_PATH=/data/marquee.duckdb
	PROFILE_CACHE_PATH=/data/profiles
	ORACLE_MODE=lexicon          # lexicon or http
	ORACLE_URL=http://oracle:8000
	JWT_SECRET=...               # guards POST /api/v1/index/rebuild
	NATS_URL=nats://nats:4222    # forwards index.rebuilt events
	LOG_LEVEL=info
	LOG_FORMAT=json

See internal/config for the full list.

# Signals

SIGINT and SIGTERM cancel the root context; the supervisor stops every
service and the HTTP server drains within the configured shutdown timeout.
*/
package main
