// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ranking

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

// recordingClassifier returns canned scores per segment and remembers its input.
type recordingClassifier struct {
	mu       sync.Mutex
	scores   map[string][]models.LabelScore
	err      error
	calls    int
	segments [][]string
}

func (c *recordingClassifier) Classify(_ context.Context, segments []string) ([][]models.LabelScore, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.segments = append(c.segments, append([]string(nil), segments...))
	if c.err != nil {
		return nil, c.err
	}
	out := make([][]models.LabelScore, len(segments))
	for i, s := range segments {
		out[i] = c.scores[s]
	}
	return out, nil
}

type mapThesaurus map[string][]string

func (m mapThesaurus) Synonyms(term string) []string { return m[term] }

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		results [][]models.LabelScore
		want    models.EmotionVector
	}{
		{
			name:    "no segments",
			results: nil,
			want:    models.EmotionVector{},
		},
		{
			name: "single segment",
			results: [][]models.LabelScore{
				{{Label: "joy", Score: 0.7}, {Label: "love", Score: 0.3}},
			},
			want: models.EmotionVector{0.3, 0.7},
		},
		{
			name: "missing label still counts in denominator",
			results: [][]models.LabelScore{
				{{Label: "anger", Score: 0.8}},
				{{Label: "fear", Score: 0.4}},
			},
			want: models.EmotionVector{0, 0, 0.4, 0, 0, 0.2},
		},
		{
			name: "unknown labels ignored",
			results: [][]models.LabelScore{
				{{Label: "disgust", Score: 0.9}, {Label: "sadness", Score: 0.1}},
			},
			want: models.EmotionVector{0, 0, 0, 0.1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.results)
			for i := range got {
				if !almostEqual(got[i], tt.want[i]) {
					t.Errorf("Aggregate()[%s] = %v, want %v", models.EmotionLabels[i], got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExpandTerm(t *testing.T) {
	got := ExpandTerm("Happy", []string{"happy", "Felicitous", "glad", "glad", "well_chosen", " "})
	want := []string{"felicitous", "glad", "well chosen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandTerm() = %v, want %v", got, want)
	}
}

func TestSegments(t *testing.T) {
	th := mapThesaurus{
		"happy":  {"happy", "glad"},
		"angry":  {"furious", "glad"},
		"scared": {"afraid"},
	}

	tests := []struct {
		name   string
		expand bool
		th     Thesaurus
		query  string
		want   []string
	}{
		{"disabled keeps raw query", false, th, "Happy Angry", []string{"Happy Angry"}},
		{"nil thesaurus disables expansion", true, nil, "happy", []string{"happy"}},
		{"expanded and deduplicated", true, th, "happy angry", []string{"glad", "furious"}},
		{"term without synonyms stands for itself", true, th, "sad", []string{"sad"}},
		{"mixed", true, th, "sad HAPPY", []string{"sad", "glad"}},
		{"punctuation is not part of a term", true, th, "angry, scared!", []string{"furious", "glad", "afraid"}},
		{"stopwords are not expanded", true, th, "I am so happy", []string{"glad"}},
		{"only stopwords keeps the query", true, th, "so so", []string{"so so"}},
		{"blank", true, th, "   ", nil},
		{"blank disabled", false, th, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewQueryVectorizer(&recordingClassifier{}, tt.th, tt.expand)
			got := v.Segments(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSegments_NoSynonymsMatchesDisabled(t *testing.T) {
	enabled := NewQueryVectorizer(&recordingClassifier{}, mapThesaurus{}, true)
	disabled := NewQueryVectorizer(&recordingClassifier{}, mapThesaurus{}, false)

	for _, q := range []string{"melancholy", "bravery"} {
		if a, b := enabled.Segments(q), disabled.Segments(q); !reflect.DeepEqual(a, b) {
			t.Errorf("Segments(%q): enabled %v, disabled %v", q, a, b)
		}
	}
}

func TestVectorize(t *testing.T) {
	c := &recordingClassifier{scores: map[string][]models.LabelScore{
		"glad":    {{Label: "joy", Score: 0.9}, {Label: "love", Score: 0.1}},
		"furious": {{Label: "anger", Score: 1.0}},
	}}
	v := NewQueryVectorizer(c, mapThesaurus{"happy": {"glad"}, "angry": {"furious"}}, true)

	got, err := v.Vectorize(context.Background(), "happy angry")
	if err != nil {
		t.Fatalf("Vectorize() error = %v", err)
	}
	want := models.EmotionVector{0.05, 0.45, 0.5, 0, 0, 0}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("Vectorize()[%s] = %v, want %v", models.EmotionLabels[i], got[i], want[i])
		}
	}
	if !reflect.DeepEqual(c.segments[0], []string{"glad", "furious"}) {
		t.Errorf("classifier received %v", c.segments[0])
	}
}

func TestVectorize_BlankQuerySkipsClassifier(t *testing.T) {
	c := &recordingClassifier{}
	v := NewQueryVectorizer(c, nil, false)

	got, err := v.Vectorize(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Vectorize() error = %v", err)
	}
	if got != (models.EmotionVector{}) {
		t.Errorf("Vectorize(blank) = %v, want zero vector", got)
	}
	if c.calls != 0 {
		t.Errorf("classifier called %d times, want 0", c.calls)
	}
}

func TestVectorize_ClassifierError(t *testing.T) {
	wantErr := errors.New("oracle down")
	v := NewQueryVectorizer(&recordingClassifier{err: wantErr}, nil, false)

	if _, err := v.Vectorize(context.Background(), "love"); !errors.Is(err, wantErr) {
		t.Errorf("Vectorize() error = %v, want %v", err, wantErr)
	}
}
