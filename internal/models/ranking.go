// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// RankedActor is one entry of a ranking result. Actor is populated only when
// the caller asked for hydration and the repository lookup succeeded.
type RankedActor struct {
	ActorID int64   `json:"actor_id"`
	Score   float64 `json:"score"`
	Actor   *Actor  `json:"actor,omitempty"`
}
