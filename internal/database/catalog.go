// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// InsertActors inserts actors in one transaction.
func (db *DB) InsertActors(ctx context.Context, actors []models.Actor) (err error) {
	defer observe("insert", "actors", time.Now(), &err)
	return db.insertBatch(ctx, `INSERT INTO actors (id, name, imdb_id) VALUES (?, ?, ?)`, len(actors),
		func(i int) []any {
			return []any{actors[i].ID, actors[i].Name, nullString(actors[i].IMDbID)}
		})
}

// InsertMovies inserts movies in one transaction.
func (db *DB) InsertMovies(ctx context.Context, movies []models.Movie) (err error) {
	defer observe("insert", "movies", time.Now(), &err)
	return db.insertBatch(ctx, `INSERT INTO movies (id, title, imdb_id) VALUES (?, ?, ?)`, len(movies),
		func(i int) []any {
			return []any{movies[i].ID, movies[i].Title, nullString(movies[i].IMDbID)}
		})
}

// InsertRoles inserts roles in one transaction.
func (db *DB) InsertRoles(ctx context.Context, roles []models.Role) (err error) {
	defer observe("insert", "roles", time.Now(), &err)
	return db.insertBatch(ctx, `INSERT INTO roles (id, name, movie_id, actor_id) VALUES (?, ?, ?, ?)`, len(roles),
		func(i int) []any {
			return []any{roles[i].ID, roles[i].Name, roles[i].MovieID, roles[i].ActorID}
		})
}

// InsertScripts inserts scripts in one transaction.
func (db *DB) InsertScripts(ctx context.Context, scripts []models.Script) (err error) {
	defer observe("insert", "scripts", time.Now(), &err)
	return db.insertBatch(ctx, `INSERT INTO scripts (id, role_id, dialogue, processed_dialogue) VALUES (?, ?, ?, ?)`, len(scripts),
		func(i int) []any {
			s := scripts[i]
			return []any{s.ID, s.RoleID, s.Dialogue, nullString(s.ProcessedDialogue)}
		})
}

// insertBatch executes query once per row inside a transaction.
func (db *DB) insertBatch(ctx context.Context, query string, n int, args func(i int) []any) error {
	if n == 0 {
		return nil
	}
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// ActorsByIDs returns the actors with the given ids, ordered by id. Unknown
// ids are skipped.
func (db *DB) ActorsByIDs(ctx context.Context, ids []int64) (actors []models.Actor, err error) {
	defer observe("select", "actors", time.Now(), &err)
	if len(ids) == 0 {
		return []models.Actor{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, imdb_id FROM actors WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query actors: %w", err)
	}
	defer closeWithLog(rows, "rows")

	actors = make([]models.Actor, 0, len(ids))
	for rows.Next() {
		var a models.Actor
		var imdb sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &imdb); err != nil {
			return nil, fmt.Errorf("scan actor: %w", err)
		}
		a.IMDbID = imdb.String
		actors = append(actors, a)
	}
	return actors, rows.Err()
}

// ActorRoleCounts returns how many roles each actor with at least one role
// has played, most roles first and ties by ascending actor id.
func (db *DB) ActorRoleCounts(ctx context.Context) (counts []models.RoleCount, err error) {
	defer observe("select", "roles", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT actor_id, COUNT(*) AS roles
		FROM roles
		GROUP BY actor_id
		ORDER BY roles DESC, actor_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query role counts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	counts = []models.RoleCount{}
	for rows.Next() {
		var rc models.RoleCount
		if err := rows.Scan(&rc.ActorID, &rc.Roles); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}

// CatalogCounts holds row counts per catalog table.
type CatalogCounts struct {
	Actors   int64 `json:"actors"`
	Movies   int64 `json:"movies"`
	Roles    int64 `json:"roles"`
	Scripts  int64 `json:"scripts"`
	Profiles int64 `json:"profiles"`
}

// Counts returns row counts for every catalog table.
func (db *DB) Counts(ctx context.Context) (c CatalogCounts, err error) {
	defer observe("count", "catalog", time.Now(), &err)

	err = db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM actors),
			(SELECT COUNT(*) FROM movies),
			(SELECT COUNT(*) FROM roles),
			(SELECT COUNT(*) FROM scripts),
			(SELECT COUNT(*) FROM actor_emotions)`).
		Scan(&c.Actors, &c.Movies, &c.Roles, &c.Scripts, &c.Profiles)
	if err != nil {
		return c, fmt.Errorf("count catalog: %w", err)
	}
	return c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
