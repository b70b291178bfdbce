// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ranking

import (
	"sort"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// EmotionIndex is an immutable snapshot of actor emotion vectors and their
// fame coefficients. It is never modified after construction; a rebuild
// produces a new index that replaces the old one wholesale.
type EmotionIndex struct {
	ids     []int64
	vectors map[int64]models.EmotionVector
	fame    FameTable
	builtAt time.Time
}

// BuildEmotionIndex builds an index holding one vector per profile. When an
// actor appears more than once the last profile wins. fame is copied; actors
// absent from it are kept in the index but excluded from ranking.
func BuildEmotionIndex(profiles []models.EmotionProfile, fame FameTable) *EmotionIndex {
	vectors := make(map[int64]models.EmotionVector, len(profiles))
	for i := range profiles {
		vectors[profiles[i].ActorID] = profiles[i].Vector()
	}

	ids := make([]int64, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fameCopy := make(FameTable, len(fame))
	for id, f := range fame {
		fameCopy[id] = f
	}

	return &EmotionIndex{
		ids:     ids,
		vectors: vectors,
		fame:    fameCopy,
		builtAt: time.Now(),
	}
}

// BuildPrimaryIndex runs the fame ranking over the actors that have a profile
// and builds the emotion index from the result.
func BuildPrimaryIndex(profiles []models.EmotionProfile, counts []models.RoleCount, cfg FameConfig) *EmotionIndex {
	eligible := make(map[int64]struct{}, len(profiles))
	for i := range profiles {
		eligible[profiles[i].ActorID] = struct{}{}
	}
	fame := ComputeFame(OrderByPopularity(counts, eligible), cfg)
	return BuildEmotionIndex(profiles, fame)
}

// Len returns the number of indexed actors.
func (ix *EmotionIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.ids)
}

// IDs returns the indexed actor ids in ascending order.
func (ix *EmotionIndex) IDs() []int64 {
	if ix == nil {
		return nil
	}
	out := make([]int64, len(ix.ids))
	copy(out, ix.ids)
	return out
}

// Vector returns the stored vector for id.
func (ix *EmotionIndex) Vector(id int64) (models.EmotionVector, bool) {
	if ix == nil {
		return models.EmotionVector{}, false
	}
	v, ok := ix.vectors[id]
	return v, ok
}

// Fame returns the fame coefficient for id.
func (ix *EmotionIndex) Fame(id int64) (float64, bool) {
	if ix == nil {
		return 0, false
	}
	f, ok := ix.fame[id]
	return f, ok
}

// BuiltAt returns when the index was constructed.
func (ix *EmotionIndex) BuiltAt() time.Time {
	if ix == nil {
		return time.Time{}
	}
	return ix.builtAt
}
