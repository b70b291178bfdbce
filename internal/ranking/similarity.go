// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ranking

import (
	"sort"

	"github.com/tomtom215/marquee/internal/models"
)

// DefaultTopK is the number of results returned when the caller does not ask
// for a specific count.
const DefaultTopK = 10

// BlendScore combines a similarity with a fame coefficient.
func BlendScore(similarity, fame, alpha float64) float64 {
	return similarity*(1-alpha) + fame*alpha
}

// Rank scores every actor in ix against q and returns the best topK.
// alpha is clamped to [0, 1]. topK <= 0 returns the full ranking.
func Rank(ix *EmotionIndex, q models.EmotionVector, topK int, alpha float64) []models.RankedActor {
	if ix.Len() == 0 {
		return []models.RankedActor{}
	}
	alpha = clamp01(alpha)

	results := make([]models.RankedActor, 0, ix.Len())
	for _, id := range ix.ids {
		fame, ok := ix.fame[id]
		if !ok {
			continue
		}
		v := ix.vectors[id]
		results = append(results, models.RankedActor{
			ActorID: id,
			Score:   BlendScore(Cosine(q[:], v[:]), fame, alpha),
		})
	}

	SortRanked(results)
	return Truncate(results, topK)
}

// SortRanked orders results by score descending, ties by ascending actor id.
func SortRanked(results []models.RankedActor) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ActorID < results[j].ActorID
	})
}

// Truncate keeps the first topK results. topK <= 0 keeps all of them.
func Truncate(results []models.RankedActor, topK int) []models.RankedActor {
	if topK > 0 && len(results) > topK {
		return results[:topK]
	}
	return results
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
