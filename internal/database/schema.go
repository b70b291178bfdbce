// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// tableCreationQueries holds the catalog schema. Roles and scripts reference
// their parents by id; foreign keys are not declared so the catalog can be
// loaded in any order.
var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS actors (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		imdb_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		imdb_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGINT PRIMARY KEY,
		name TEXT,
		movie_id BIGINT NOT NULL,
		actor_id BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scripts (
		id BIGINT PRIMARY KEY,
		role_id BIGINT NOT NULL,
		dialogue TEXT,
		processed_dialogue TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS actor_emotions (
		actor_id BIGINT PRIMARY KEY,
		love DOUBLE NOT NULL,
		joy DOUBLE NOT NULL,
		anger DOUBLE NOT NULL,
		sadness DOUBLE NOT NULL,
		surprise DOUBLE NOT NULL,
		fear DOUBLE NOT NULL,
		classified_at TIMESTAMP NOT NULL
	)`,
}

var indexCreationQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_roles_actor ON roles(actor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scripts_role ON scripts(role_id)`,
}

// createTables creates the catalog tables
func (db *DB) createTables(ctx context.Context) error {
	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// createIndexes creates lookup indexes for the build queries
func (db *DB) createIndexes(ctx context.Context) error {
	for _, query := range indexCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
