// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package thesaurus provides synonym lookup for query expansion.
//
// Entries are organized as synsets, groups of lemmas sharing a sense, ordered
// from the most to the least common sense. Only the first synset of a term is
// used, which keeps expansion close to the term's everyday meaning.
package thesaurus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Thesaurus is an in-memory synset table keyed by lowercase term.
type Thesaurus struct {
	synsets map[string][][]string
}

// New creates a thesaurus from a synset table. Keys are lowercased.
func New(synsets map[string][][]string) *Thesaurus {
	t := &Thesaurus{synsets: make(map[string][][]string, len(synsets))}
	for term, sets := range synsets {
		t.synsets[strings.ToLower(strings.TrimSpace(term))] = sets
	}
	return t
}

// Load reads a YAML synset file:
//
//	happy:
//	  - [happy, felicitous, glad]
//	  - [glad, beaming]
func Load(path string) (*Thesaurus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thesaurus: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML synset data.
func Parse(data []byte) (*Thesaurus, error) {
	var synsets map[string][][]string
	if err := yaml.Unmarshal(data, &synsets); err != nil {
		return nil, fmt.Errorf("parse thesaurus: %w", err)
	}
	return New(synsets), nil
}

// Synonyms returns the lemmas of the first synset of term, lowercased, with
// underscores replaced by spaces, deduplicated, and without term itself.
// Unknown terms have no synonyms.
func (t *Thesaurus) Synonyms(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	sets := t.synsets[term]
	if len(sets) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(sets[0]))
	var out []string
	for _, lemma := range sets[0] {
		lemma = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lemma), "_", " "))
		if lemma == "" || lemma == term {
			continue
		}
		if _, ok := seen[lemma]; ok {
			continue
		}
		seen[lemma] = struct{}{}
		out = append(out, lemma)
	}
	return out
}

// Len returns the number of terms.
func (t *Thesaurus) Len() int {
	return len(t.synsets)
}
