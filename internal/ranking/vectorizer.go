// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ranking

import (
	"context"
	"strings"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/textproc"
)

// Classifier scores text segments against the emotion labels. The result has
// one entry per classified segment; an entry may omit labels.
type Classifier interface {
	Classify(ctx context.Context, segments []string) ([][]models.LabelScore, error)
}

// Thesaurus returns synonyms for a single term.
type Thesaurus interface {
	Synonyms(term string) []string
}

// QueryVectorizer turns free text into an emotion vector comparable with the
// vectors in an EmotionIndex.
type QueryVectorizer struct {
	classifier Classifier
	thesaurus  Thesaurus
	expand     bool
}

// NewQueryVectorizer creates a vectorizer. Expansion is only applied when
// expand is true and thesaurus is non-nil.
func NewQueryVectorizer(classifier Classifier, thesaurus Thesaurus, expand bool) *QueryVectorizer {
	return &QueryVectorizer{
		classifier: classifier,
		thesaurus:  thesaurus,
		expand:     expand && thesaurus != nil,
	}
}

// Segments returns the text segments that would be sent to the classifier.
//
// Without expansion the raw query is a single segment. With expansion the
// query is tokenized as dialogue is, and every token is replaced by its
// distinct lowercase synonyms, excluding the token itself; a token with no
// synonyms stands for itself. A query of only stopwords or punctuation is
// sent whole. Blank queries produce no segments.
func (v *QueryVectorizer) Segments(query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if !v.expand {
		return []string{query}
	}

	seen := make(map[string]struct{})
	var segments []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		segments = append(segments, s)
	}

	terms := textproc.Tokenize(query)
	if len(terms) == 0 {
		return []string{query}
	}
	for _, term := range terms {
		synonyms := ExpandTerm(term, v.thesaurus.Synonyms(term))
		if len(synonyms) == 0 {
			add(term)
			continue
		}
		for _, s := range synonyms {
			add(s)
		}
	}
	return segments
}

// Vectorize classifies the query segments and averages them into a vector.
// A blank query yields the zero vector without calling the classifier.
func (v *QueryVectorizer) Vectorize(ctx context.Context, query string) (models.EmotionVector, error) {
	segments := v.Segments(query)
	if len(segments) == 0 {
		return models.EmotionVector{}, nil
	}

	results, err := v.classifier.Classify(ctx, segments)
	if err != nil {
		return models.EmotionVector{}, err
	}
	return Aggregate(results), nil
}

// ExpandTerm normalizes synonyms for term: lowercased, underscores replaced
// with spaces, duplicates and the term itself removed. Order is preserved.
func ExpandTerm(term string, synonyms []string) []string {
	term = strings.ToLower(term)
	seen := make(map[string]struct{}, len(synonyms))
	out := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
		if s == "" || s == term {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Aggregate averages classifier output per label across segments. A label a
// segment does not report contributes nothing to the sum but the segment
// still counts in the denominator. Unknown labels are ignored. No segments
// yields the zero vector.
func Aggregate(results [][]models.LabelScore) models.EmotionVector {
	var v models.EmotionVector
	if len(results) == 0 {
		return v
	}

	for _, segment := range results {
		for _, ls := range segment {
			if i := models.LabelIndex(ls.Label); i >= 0 {
				v[i] += ls.Score
			}
		}
	}

	n := float64(len(results))
	for i := range v {
		v[i] /= n
	}
	return v
}
