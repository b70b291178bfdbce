// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package lsa

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/ranking"
)

// ErrSingularReduction reports a zero among the selected singular values.
// The index cannot invert S_k and must not be published.
var ErrSingularReduction = errors.New("lsa: singular value reduction is singular")

// singularTolerance treats singular values at or below it as zero.
const singularTolerance = 1e-12

// Config controls index construction.
type Config struct {
	// EnergyThreshold is the share of singular value mass kept by the
	// reduced space. Zero means DefaultEnergyThreshold.
	EnergyThreshold float64
}

// Index is an immutable LSA snapshot.
type Index struct {
	vocab     []string
	termIndex map[string]int
	idf       []float64

	// uk is the vocabulary-by-k left singular basis, row-major.
	uk []float64
	sk []float64
	k  int

	docIDs  []int64
	docVecs [][]float64

	singularValues []float64
	builtAt        time.Time
}

// Build constructs an index with one document per ActorTokens entry. An empty
// corpus, or one whose vocabulary is empty after pruning, yields an empty
// index that matches nothing.
func Build(ctx context.Context, docs []models.ActorTokens, cfg Config) (*Index, error) {
	threshold := cfg.EnergyThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultEnergyThreshold
	}

	sorted := make([]models.ActorTokens, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ActorID < sorted[j].ActorID })

	df := DocumentFrequencies(sorted)
	vocab := BuildVocabulary(df)
	if len(sorted) == 0 || len(vocab) == 0 {
		return &Index{termIndex: map[string]int{}, builtAt: time.Now()}, nil
	}

	n := len(sorted)
	termIndex := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		termIndex[term] = i
		idf[i] = IDF(n, df[term])
	}

	// Vocabulary-by-document TF-IDF matrix.
	data := make([]float64, len(vocab)*n)
	for d, doc := range sorted {
		if d%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for t, tf := range termCounts(doc.Tokens, termIndex) {
			data[t*n+d] = TFIDF(SublinearTF(tf), idf[t])
		}
	}
	if allZero(data) {
		// Every singular value is zero, so k = 1 selects a zero.
		return nil, fmt.Errorf("%w: term-document matrix is all zero", ErrSingularReduction)
	}
	a := mat.NewDense(len(vocab), n, data)

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.New("lsa: SVD factorization did not converge")
	}
	values := svd.Values(nil)

	k := SelectRank(values, threshold)
	for i := 0; i < k; i++ {
		if values[i] <= singularTolerance {
			return nil, fmt.Errorf("%w: value %d of %d is %g", ErrSingularReduction, i+1, k, values[i])
		}
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	uk := make([]float64, len(vocab)*k)
	for t := range vocab {
		for c := 0; c < k; c++ {
			uk[t*k+c] = u.At(t, c)
		}
	}

	docIDs := make([]int64, n)
	docVecs := make([][]float64, n)
	for d, doc := range sorted {
		docIDs[d] = doc.ActorID
		row := make([]float64, k)
		for c := 0; c < k; c++ {
			row[c] = v.At(d, c)
		}
		docVecs[d] = row
	}

	return &Index{
		vocab:          vocab,
		termIndex:      termIndex,
		idf:            idf,
		uk:             uk,
		sk:             append([]float64(nil), values[:k]...),
		k:              k,
		docIDs:         docIDs,
		docVecs:        docVecs,
		singularValues: values,
		builtAt:        time.Now(),
	}, nil
}

// Project maps query tokens into the reduced space: q^T * U_k * S_k^-1.
// Tokens outside the vocabulary are ignored.
func (ix *Index) Project(tokens []string) []float64 {
	out := make([]float64, ix.k)
	if ix.k == 0 {
		return out
	}
	for t, tf := range termCounts(tokens, ix.termIndex) {
		w := TFIDF(SublinearTF(tf), ix.idf[t])
		if w == 0 {
			continue
		}
		row := ix.uk[t*ix.k : (t+1)*ix.k]
		for c, u := range row {
			out[c] += w * u
		}
	}
	for c := range out {
		out[c] /= ix.sk[c]
	}
	return out
}

// Rank returns documents with strictly positive cosine similarity to the
// projected query, best first, ties by ascending actor id. topK <= 0 returns
// every match.
func (ix *Index) Rank(tokens []string, topK int) []models.RankedActor {
	results := []models.RankedActor{}
	if ix == nil || ix.k == 0 {
		return results
	}

	q := ix.Project(tokens)
	for d, vec := range ix.docVecs {
		if sim := ranking.Cosine(q, vec); sim > 0 {
			results = append(results, models.RankedActor{ActorID: ix.docIDs[d], Score: sim})
		}
	}

	ranking.SortRanked(results)
	return ranking.Truncate(results, topK)
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.docIDs)
}

// K returns the reduced dimensionality.
func (ix *Index) K() int {
	if ix == nil {
		return 0
	}
	return ix.k
}

// VocabularySize returns the number of retained terms.
func (ix *Index) VocabularySize() int {
	if ix == nil {
		return 0
	}
	return len(ix.vocab)
}

// SingularValues returns a copy of every singular value, descending.
func (ix *Index) SingularValues() []float64 {
	if ix == nil {
		return nil
	}
	return append([]float64(nil), ix.singularValues...)
}

// BuiltAt returns when the index was constructed.
func (ix *Index) BuiltAt() time.Time {
	if ix == nil {
		return time.Time{}
	}
	return ix.builtAt
}

func allZero(data []float64) bool {
	for _, x := range data {
		if x != 0 {
			return false
		}
	}
	return true
}
