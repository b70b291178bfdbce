// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ranking

import (
	"fmt"
	"sort"

	"github.com/tomtom215/marquee/internal/models"
)

// FameConfig bounds the fame prior.
type FameConfig struct {
	// Max is the coefficient of the most popular actor. Kept modestly above 1
	// so the prior stays on the same scale as cosine similarity.
	Max float64

	// Min is the coefficient of the least popular actor.
	Min float64
}

// DefaultFameConfig returns the default fame bounds.
func DefaultFameConfig() FameConfig {
	return FameConfig{Max: 1.2, Min: 0.2}
}

// Validate checks the bounds.
func (c FameConfig) Validate() error {
	if c.Min < 0 {
		return fmt.Errorf("fame min must be >= 0, got %g", c.Min)
	}
	if c.Max < c.Min {
		return fmt.Errorf("fame max (%g) must be >= fame min (%g)", c.Max, c.Min)
	}
	return nil
}

// FameTable maps actor id to its fame coefficient.
type FameTable map[int64]float64

// OrderByPopularity returns the ids of eligible actors ordered by role count
// descending, ties broken by ascending id. Eligible actors missing from
// counts are treated as having zero roles. A nil eligible set admits every
// actor in counts.
func OrderByPopularity(counts []models.RoleCount, eligible map[int64]struct{}) []int64 {
	roles := make(map[int64]int, len(counts))
	for _, rc := range counts {
		if eligible != nil {
			if _, ok := eligible[rc.ActorID]; !ok {
				continue
			}
		}
		roles[rc.ActorID] += rc.Roles
	}
	for id := range eligible {
		if _, ok := roles[id]; !ok {
			roles[id] = 0
		}
	}

	ids := make([]int64, 0, len(roles))
	for id := range roles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := roles[ids[i]], roles[ids[j]]
		if ri != rj {
			return ri > rj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// ComputeFame assigns linearly interpolated coefficients to ids, which must
// already be in popularity order. The first id receives cfg.Max, the last
// cfg.Min, and a single id receives cfg.Max.
func ComputeFame(ordered []int64, cfg FameConfig) FameTable {
	n := len(ordered)
	table := make(FameTable, n)
	if n == 0 {
		return table
	}
	if n == 1 {
		table[ordered[0]] = cfg.Max
		return table
	}

	span := cfg.Max - cfg.Min
	for i, id := range ordered {
		table[id] = cfg.Max - span*float64(i)/float64(n-1)
	}
	return table
}
