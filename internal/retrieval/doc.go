// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package retrieval ties the catalog, the classification oracle and the two
ranking engines together.

A Service owns two immutable index snapshots:

  - the primary emotion index (ranking.EmotionIndex), built from per-actor
    emotion profiles plus the fame prior
  - the optional LSA index (lsa.Index), built from preprocessed dialogue tokens

Both are published through atomic pointers. Rebuilds run one at a time and
never block readers; a failed rebuild leaves the previous snapshot serving.

# Build Pipeline

	oracle.Loader.Get -> textproc.Preprocessor -> classify actors (errgroup)
	  -> SaveEmotionProfiles -> ClassifiedActors + ActorRoleCounts
	  -> ranking.BuildPrimaryIndex -> lsa.Build

Classification is skipped for actors whose dialogue fingerprint matches a
cached profile, unless the rebuild asks to reclassify.

# Ranking

Rank in primary mode vectorizes the query through the oracle (bounded by
the query timeout, falling back to a zero vector) and blends cosine
similarity with fame. Rank in lsa mode projects query tokens into the
reduced space and falls back to primary when no LSA index is published.
*/
package retrieval
