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

// UnprocessedScripts returns scripts with dialogue but no processed form.
func (db *DB) UnprocessedScripts(ctx context.Context) (scripts []models.Script, err error) {
	defer observe("select", "scripts", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, role_id, dialogue
		FROM scripts
		WHERE processed_dialogue IS NULL AND dialogue IS NOT NULL
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query unprocessed scripts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	scripts = []models.Script{}
	for rows.Next() {
		var s models.Script
		if err := rows.Scan(&s.ID, &s.RoleID, &s.Dialogue); err != nil {
			return nil, fmt.Errorf("scan script: %w", err)
		}
		scripts = append(scripts, s)
	}
	return scripts, rows.Err()
}

// UpdateProcessedDialogue stores the processed form of one script.
func (db *DB) UpdateProcessedDialogue(ctx context.Context, scriptID int64, processed string) (err error) {
	defer observe("update", "scripts", time.Now(), &err)

	res, err := db.conn.ExecContext(ctx,
		`UPDATE scripts SET processed_dialogue = ? WHERE id = ?`, processed, scriptID)
	if err != nil {
		return fmt.Errorf("update script %d: %w", scriptID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("script %d: %w", scriptID, ErrNotFound)
	}
	return nil
}

// ActorDialogues returns each actor's raw dialogue, one entry per non-empty
// script, ordered by actor id then script id.
func (db *DB) ActorDialogues(ctx context.Context) (out []models.ActorDialogue, err error) {
	defer observe("select", "scripts", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.actor_id, s.dialogue
		FROM scripts s
		JOIN roles r ON r.id = s.role_id
		WHERE s.dialogue IS NOT NULL AND length(trim(s.dialogue)) > 0
		ORDER BY r.actor_id, s.id`)
	if err != nil {
		return nil, fmt.Errorf("query actor dialogue: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = []models.ActorDialogue{}
	for rows.Next() {
		var actorID int64
		var dialogue string
		if err := rows.Scan(&actorID, &dialogue); err != nil {
			return nil, fmt.Errorf("scan dialogue: %w", err)
		}
		if n := len(out); n > 0 && out[n-1].ActorID == actorID {
			out[n-1].Dialogue = append(out[n-1].Dialogue, dialogue)
			continue
		}
		out = append(out, models.ActorDialogue{ActorID: actorID, Dialogue: []string{dialogue}})
	}
	return out, rows.Err()
}

// ActorTokens returns each actor's processed dialogue as one token stream,
// ordered by actor id. Scripts that have not been preprocessed are skipped.
func (db *DB) ActorTokens(ctx context.Context) (out []models.ActorTokens, err error) {
	defer observe("select", "scripts", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.actor_id, s.processed_dialogue
		FROM scripts s
		JOIN roles r ON r.id = s.role_id
		WHERE s.processed_dialogue IS NOT NULL
		ORDER BY r.actor_id, s.id`)
	if err != nil {
		return nil, fmt.Errorf("query actor tokens: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = []models.ActorTokens{}
	for rows.Next() {
		var actorID int64
		var processed sql.NullString
		if err := rows.Scan(&actorID, &processed); err != nil {
			return nil, fmt.Errorf("scan tokens: %w", err)
		}
		tokens := strings.Fields(processed.String)
		if n := len(out); n > 0 && out[n-1].ActorID == actorID {
			out[n-1].Tokens = append(out[n-1].Tokens, tokens...)
			continue
		}
		out = append(out, models.ActorTokens{ActorID: actorID, Tokens: tokens})
	}
	return out, rows.Err()
}
