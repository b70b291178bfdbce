// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package textproc prepares script dialogue for indexing and classification:
// tokenization, stopword removal, and chunking.
package textproc

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Tokenize lowercases text and returns its word tokens with stopwords and
// single-letter tokens removed.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}

	out := raw[:0]
	for _, tok := range raw {
		tok = strings.ReplaceAll(tok, "’", "'")
		if len([]rune(tok)) < 2 || IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Process returns the space-joined tokens of dialogue, the form stored as a
// script's processed dialogue.
func Process(dialogue string) string {
	return strings.Join(Tokenize(dialogue), " ")
}

// Chunk splits text into segments of at most maxWords whitespace-separated
// words. maxWords <= 0 returns the trimmed text as a single segment. Blank
// text yields no segments.
func Chunk(text string, maxWords int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWords <= 0 || len(words) <= maxWords {
		return []string{strings.Join(words, " ")}
	}

	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for start := 0; start < len(words); start += maxWords {
		end := min(start+maxWords, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}

// ChunkAll chunks every text and concatenates the segments in order.
func ChunkAll(texts []string, maxWords int) []string {
	var out []string
	for _, t := range texts {
		out = append(out, Chunk(t, maxWords)...)
	}
	return out
}
