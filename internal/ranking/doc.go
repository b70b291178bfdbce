// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package ranking implements the primary emotion-vector retrieval engine.

Building the index:

	fame := ranking.ComputeFame(ranking.OrderByPopularity(counts, eligible), cfg)
	idx := ranking.BuildEmotionIndex(profiles, fame)

Ranking a query:

	q, err := vectorizer.Vectorize(ctx, "a tender love story")
	results := ranking.Rank(idx, q, 10, 0.1)

Scores blend cosine similarity with the fame prior:

	score = cosine(q, v) * (1 - alpha) + fame * alpha

Fame is never folded into stored vectors. Results are ordered by score
descending with ties broken by ascending actor id, so identical inputs always
produce identical output.
*/
package ranking
