// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ranking

import (
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

func profile(id int64, v models.EmotionVector) models.EmotionProfile {
	return models.NewEmotionProfile(id, v, testTime)
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero left", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero right", []float64{1, 1}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank_EndToEndPureCosine(t *testing.T) {
	a := profile(1, models.EmotionVector{0.9, 0.1})
	b := profile(2, models.EmotionVector{0.1, 0.9})
	idx := BuildPrimaryIndex([]models.EmotionProfile{b, a}, nil, DefaultFameConfig())

	q := models.EmotionVector{0.8, 0.2}
	got := Rank(idx, q, 10, 0)

	if len(got) != 2 {
		t.Fatalf("Rank() returned %d results, want 2", len(got))
	}
	if got[0].ActorID != 1 || got[1].ActorID != 2 {
		t.Errorf("Rank() order = [%d %d], want [1 2]", got[0].ActorID, got[1].ActorID)
	}
	va := a.Vector()
	if want := Cosine(q[:], va[:]); !almostEqual(got[0].Score, want) {
		t.Errorf("score with alpha=0 = %v, want pure cosine %v", got[0].Score, want)
	}
}

func TestRank_AlphaOneIsPureFame(t *testing.T) {
	profiles := []models.EmotionProfile{
		profile(1, models.EmotionVector{1, 0, 0, 0, 0, 0}),
		profile(2, models.EmotionVector{0, 1, 0, 0, 0, 0}),
		profile(3, models.EmotionVector{0, 0, 1, 0, 0, 0}),
	}
	fame := FameTable{1: 0.5, 2: 1.0, 3: 0.5}
	idx := BuildEmotionIndex(profiles, fame)

	got := Rank(idx, models.EmotionVector{1, 0, 0, 0, 0, 0}, 0, 1)

	wantIDs := []int64{2, 1, 3}
	for i, id := range wantIDs {
		if got[i].ActorID != id {
			t.Errorf("Rank()[%d] = %d, want %d", i, got[i].ActorID, id)
		}
		if got[i].Score != fame[id] {
			t.Errorf("Rank()[%d].Score = %v, want fame %v", i, got[i].Score, fame[id])
		}
	}
}

func TestRank_BlendAndTopK(t *testing.T) {
	profiles := make([]models.EmotionProfile, 0, 15)
	counts := make([]models.RoleCount, 0, 15)
	for i := int64(1); i <= 15; i++ {
		profiles = append(profiles, profile(i, models.EmotionVector{float64(i), 1, 0, 0, 0, 0}))
		counts = append(counts, models.RoleCount{ActorID: i, Roles: int(i)})
	}
	idx := BuildPrimaryIndex(profiles, counts, FameConfig{Max: 1.2, Min: 0.2})
	q := models.EmotionVector{1, 0, 0, 0, 0, 0}

	tests := []struct {
		name string
		topK int
		want int
	}{
		{"default size", DefaultTopK, 10},
		{"smaller", 3, 3},
		{"zero returns all", 0, 15},
		{"negative returns all", -1, 15},
		{"larger than corpus", 100, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(idx, q, tt.topK, 0.3)
			if len(got) != tt.want {
				t.Fatalf("len(Rank()) = %d, want %d", len(got), tt.want)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Score > got[i-1].Score {
					t.Errorf("results not sorted at %d: %v > %v", i, got[i].Score, got[i-1].Score)
				}
			}
		})
	}

	v := idx.vectors[15]
	fame, _ := idx.Fame(15)
	want := Cosine(q[:], v[:])*0.7 + fame*0.3
	if got := Rank(idx, q, 1, 0.3); !almostEqual(got[0].Score, want) {
		t.Errorf("blended score = %v, want %v", got[0].Score, want)
	}
}

func TestRank_ExcludesActorsWithoutFame(t *testing.T) {
	profiles := []models.EmotionProfile{
		profile(1, models.EmotionVector{1}),
		profile(2, models.EmotionVector{1}),
	}
	idx := BuildEmotionIndex(profiles, FameTable{2: 1})

	got := Rank(idx, models.EmotionVector{1}, 0, 0.5)
	if len(got) != 1 || got[0].ActorID != 2 {
		t.Errorf("Rank() = %+v, want only actor 2", got)
	}
}

func TestRank_ZeroQueryTiesByID(t *testing.T) {
	profiles := []models.EmotionProfile{
		profile(3, models.EmotionVector{0.5, 0.5}),
		profile(1, models.EmotionVector{0.9, 0.1}),
		profile(2, models.EmotionVector{0.1, 0.9}),
	}
	idx := BuildEmotionIndex(profiles, FameTable{1: 1, 2: 1, 3: 1})

	got := Rank(idx, models.EmotionVector{}, 0, 0)
	for i, want := range []int64{1, 2, 3} {
		if got[i].ActorID != want || got[i].Score != 0 {
			t.Errorf("Rank()[%d] = %+v, want actor %d with score 0", i, got[i], want)
		}
	}
}

func TestRank_EmptyIndex(t *testing.T) {
	idx := BuildPrimaryIndex(nil, nil, DefaultFameConfig())

	got := Rank(idx, models.EmotionVector{1}, 10, 0.5)
	if got == nil || len(got) != 0 {
		t.Errorf("Rank(empty) = %v, want empty non-nil slice", got)
	}
	if got := Rank(nil, models.EmotionVector{1}, 10, 0.5); len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
}

func TestRank_Deterministic(t *testing.T) {
	profiles := []models.EmotionProfile{
		profile(5, models.EmotionVector{0.2, 0.3, 0.1, 0.1, 0.2, 0.1}),
		profile(2, models.EmotionVector{0.2, 0.3, 0.1, 0.1, 0.2, 0.1}),
		profile(9, models.EmotionVector{0.6, 0.1, 0.1, 0.1, 0.05, 0.05}),
		profile(1, models.EmotionVector{0.1, 0.1, 0.5, 0.1, 0.1, 0.1}),
	}
	counts := []models.RoleCount{{ActorID: 5, Roles: 2}, {ActorID: 2, Roles: 2}, {ActorID: 9, Roles: 1}}
	q := models.EmotionVector{0.3, 0.3, 0.1, 0.1, 0.1, 0.1}

	first := Rank(BuildPrimaryIndex(profiles, counts, DefaultFameConfig()), q, 0, 0.25)
	second := Rank(BuildPrimaryIndex(profiles, counts, DefaultFameConfig()), q, 0, 0.25)

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBlendScore(t *testing.T) {
	tests := []struct {
		name                    string
		similarity, fame, alpha float64
		want                    float64
	}{
		{"alpha zero", 0.8, 3, 0, 0.8},
		{"alpha one", 0.8, 3, 1, 3},
		{"half", 0.5, 1.5, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendScore(tt.similarity, tt.fame, tt.alpha); !almostEqual(got, tt.want) {
				t.Errorf("BlendScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
