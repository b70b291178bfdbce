// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the data structures shared across Marquee.

Catalog records (Actor, Movie, Role, Script) mirror the tables owned by the
DuckDB repository. EmotionProfile and EmotionVector carry classifier output in
the fixed label order used everywhere in the system:

	love, joy, anger, sadness, surprise, fear

RankedActor is the unit returned by both ranking engines.
*/
package models
