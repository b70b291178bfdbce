// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// Actor is a performer that can be ranked.
type Actor struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IMDbID string `json:"imdb_id,omitempty"`
}

// Movie is a film whose script provides dialogue.
type Movie struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	IMDbID string `json:"imdb_id,omitempty"`
}

// Role links an actor to a character in a movie.
type Role struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	MovieID int64  `json:"movie_id"`
	ActorID int64  `json:"actor_id"`
}

// Script holds the dialogue spoken in one role. ProcessedDialogue is the
// tokenized, stopword-free form; empty until preprocessing has run.
type Script struct {
	ID                int64  `json:"id"`
	RoleID            int64  `json:"role_id"`
	Dialogue          string `json:"dialogue"`
	ProcessedDialogue string `json:"processed_dialogue,omitempty"`
}

// ActorDialogue is the raw dialogue of all of an actor's roles, one entry per script.
type ActorDialogue struct {
	ActorID  int64
	Dialogue []string
}

// ActorTokens is the preprocessed token stream of all of an actor's scripts.
type ActorTokens struct {
	ActorID int64
	Tokens  []string
}

// RoleCount is the number of roles an actor has played, the popularity signal
// behind the fame prior.
type RoleCount struct {
	ActorID int64
	Roles   int
}
