// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package lsa

import (
	"sort"

	"github.com/tomtom215/marquee/internal/models"
)

// DocumentFrequencies counts, for every token, the number of documents that
// contain it at least once.
func DocumentFrequencies(docs []models.ActorTokens) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc.Tokens))
		for _, tok := range doc.Tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	return df
}

// BuildVocabulary returns the tokens that appear in more than one document,
// sorted lexicographically.
func BuildVocabulary(df map[string]int) []string {
	vocab := make([]string, 0, len(df))
	for tok, n := range df {
		if n > 1 {
			vocab = append(vocab, tok)
		}
	}
	sort.Strings(vocab)
	return vocab
}

// termCounts counts the tokens of doc that are present in termIndex.
func termCounts(tokens []string, termIndex map[string]int) map[int]int {
	counts := make(map[int]int)
	for _, tok := range tokens {
		if i, ok := termIndex[tok]; ok {
			counts[i]++
		}
	}
	return counts
}
