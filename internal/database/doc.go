// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package database is the DuckDB-backed catalog repository for Marquee.
//
// # Overview
//
// The catalog holds actors, movies, the roles linking them, the dialogue
// scripts spoken in each role, and the per-actor emotion profiles produced
// by classification. The retrieval service reads from it to build its
// indexes; nothing in the query path touches the database except optional
// result hydration.
//
// # Files
//
//   - database.go: connection lifecycle (open, pool, checkpoint, close)
//   - schema.go: table and index creation
//   - catalog.go: actors, movies, roles and role counts
//   - scripts.go: dialogue reads and preprocessing writes
//   - emotions.go: emotion profile persistence
//   - seed.go: small demo catalog
//
// # Thread Safety
//
// DB is safe for concurrent use. Multi-row writes run in a transaction.
//
// # Metrics
//
// Every query records its latency and errors through
// metrics.RecordDBQuery, labelled by operation and table.
package database
