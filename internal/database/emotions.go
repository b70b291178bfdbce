// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// ClassifiedActors returns every stored emotion profile ordered by actor id.
func (db *DB) ClassifiedActors(ctx context.Context) (profiles []models.EmotionProfile, err error) {
	defer observe("select", "actor_emotions", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT actor_id, love, joy, anger, sadness, surprise, fear, classified_at
		FROM actor_emotions
		ORDER BY actor_id`)
	if err != nil {
		return nil, fmt.Errorf("query emotion profiles: %w", err)
	}
	defer closeWithLog(rows, "rows")

	profiles = []models.EmotionProfile{}
	for rows.Next() {
		var p models.EmotionProfile
		if err := rows.Scan(&p.ActorID, &p.Love, &p.Joy, &p.Anger, &p.Sadness, &p.Surprise, &p.Fear, &p.ClassifiedAt); err != nil {
			return nil, fmt.Errorf("scan emotion profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SaveEmotionProfiles upserts profiles in one transaction.
func (db *DB) SaveEmotionProfiles(ctx context.Context, profiles []models.EmotionProfile) (err error) {
	defer observe("upsert", "actor_emotions", time.Now(), &err)

	return db.insertBatch(ctx, `
		INSERT INTO actor_emotions (actor_id, love, joy, anger, sadness, surprise, fear, classified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (actor_id) DO UPDATE SET
			love = EXCLUDED.love,
			joy = EXCLUDED.joy,
			anger = EXCLUDED.anger,
			sadness = EXCLUDED.sadness,
			surprise = EXCLUDED.surprise,
			fear = EXCLUDED.fear,
			classified_at = EXCLUDED.classified_at`,
		len(profiles),
		func(i int) []any {
			p := profiles[i]
			at := p.ClassifiedAt
			if at.IsZero() {
				at = time.Now()
			}
			return []any{p.ActorID, p.Love, p.Joy, p.Anger, p.Sadness, p.Surprise, p.Fear, at.UTC()}
		})
}
