// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// demoCatalog is a tiny catalog with dialogue leaning toward distinct
// emotions, enough to exercise both indexes end to end.
var demoCatalog = struct {
	actors  []models.Actor
	movies  []models.Movie
	roles   []models.Role
	scripts []models.Script
}{
	actors: []models.Actor{
		{ID: 1, Name: "Ava Hart", IMDbID: "nm9000001"},
		{ID: 2, Name: "Ben Rook", IMDbID: "nm9000002"},
		{ID: 3, Name: "Cleo Vance", IMDbID: "nm9000003"},
		{ID: 4, Name: "Dmitri Shaw", IMDbID: "nm9000004"},
		{ID: 5, Name: "Edie Moon", IMDbID: "nm9000005"},
		{ID: 6, Name: "Felix Grey", IMDbID: "nm9000006"},
	},
	movies: []models.Movie{
		{ID: 1, Title: "Letters in June", IMDbID: "tt9100001"},
		{ID: 2, Title: "The Long Night", IMDbID: "tt9100002"},
		{ID: 3, Title: "Party at Pier Nine", IMDbID: "tt9100003"},
		{ID: 4, Title: "Last Train Home", IMDbID: "tt9100004"},
	},
	roles: []models.Role{
		{ID: 1, Name: "June", MovieID: 1, ActorID: 1},
		{ID: 2, Name: "Nell", MovieID: 3, ActorID: 1},
		{ID: 3, Name: "Grady", MovieID: 2, ActorID: 2},
		{ID: 4, Name: "Sheriff Cole", MovieID: 4, ActorID: 2},
		{ID: 5, Name: "Ruth", MovieID: 4, ActorID: 3},
		{ID: 6, Name: "Ivan", MovieID: 2, ActorID: 4},
		{ID: 7, Name: "Pip", MovieID: 3, ActorID: 5},
		{ID: 8, Name: "Mr. Ames", MovieID: 1, ActorID: 6},
		{ID: 9, Name: "Grady's Brother", MovieID: 2, ActorID: 2},
	},
	scripts: []models.Script{
		{ID: 1, RoleID: 1, Dialogue: "I love you, darling. I have loved you since the wedding, my heart is yours."},
		{ID: 2, RoleID: 2, Dialogue: "Kiss me like it is the last dance, sweetheart. I adore this romantic night."},
		{ID: 3, RoleID: 3, Dialogue: "Run! Hide in the dark, the monster is coming. I am terrified, help me!"},
		{ID: 4, RoleID: 4, Dialogue: "I hate you. You betrayed me and I will have my revenge, you bastard."},
		{ID: 5, RoleID: 5, Dialogue: "He died alone. I miss him every day, the tears will not stop, the grief is broken pain."},
		{ID: 6, RoleID: 6, Dialogue: "Whoa, I cannot believe it. What a sudden twist, I am shocked, truly unbelievable."},
		{ID: 7, RoleID: 7, Dialogue: "What a wonderful party! Laugh with me, smile, celebrate, I am so happy tonight."},
		{ID: 8, RoleID: 8, Dialogue: "The letters arrived. Strange, I did not expect them at all."},
		{ID: 9, RoleID: 9, Dialogue: "The ghost screamed in the nightmare, there is blood in the dark hallway."},
	},
}

// SeedDemoData loads the demo catalog when the actors table is empty.
func (db *DB) SeedDemoData(ctx context.Context) error {
	counts, err := db.Counts(ctx)
	if err != nil {
		return err
	}
	if counts.Actors > 0 {
		logging.Debug().Int64("actors", counts.Actors).Msg("Catalog not empty, skipping demo seed")
		return nil
	}

	logging.Info().Msg("Seeding database with demo catalog")
	if err := db.InsertActors(ctx, demoCatalog.actors); err != nil {
		return fmt.Errorf("seed actors: %w", err)
	}
	if err := db.InsertMovies(ctx, demoCatalog.movies); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}
	if err := db.InsertRoles(ctx, demoCatalog.roles); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := db.InsertScripts(ctx, demoCatalog.scripts); err != nil {
		return fmt.Errorf("seed scripts: %w", err)
	}
	return nil
}
