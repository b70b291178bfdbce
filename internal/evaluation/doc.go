// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package evaluation measures ranking quality against hand-judged queries.
//
// A judgment file lists queries with the actor ids judged relevant:
//
//	queries:
//	  - query: "heartbroken lover"
//	    mode: primary
//	    top_k: 5
//	    relevant: [1, 4]
//
// Runner ranks every query through a Ranker (the in-process retrieval
// service or a remote server via HTTPRanker) and reports recall, precision
// and F1 per query plus their macro averages.
package evaluation
