// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package thesaurus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSynonyms(t *testing.T) {
	th := New(map[string][][]string{
		"Happy": {{"happy", "Felicitous", "glad", "glad", "well_chosen"}, {"beaming"}},
		"alone": {},
	})

	tests := []struct {
		term string
		want []string
	}{
		{"happy", []string{"felicitous", "glad", "well chosen"}},
		{"  HAPPY ", []string{"felicitous", "glad", "well chosen"}},
		{"alone", nil},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := th.Synonyms(tt.term); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Synonyms(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synsets.yaml")
	data := []byte("sad:\n  - [sad]\n  - [sad, sorry]\nfear:\n  - [fear, fright]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if th.Len() != 2 {
		t.Errorf("Len() = %d, want 2", th.Len())
	}
	if got := th.Synonyms("sad"); got != nil {
		t.Errorf("Synonyms(sad) = %v, want nil (first synset only holds the term)", got)
	}
	if got := th.Synonyms("fear"); !reflect.DeepEqual(got, []string{"fright"}) {
		t.Errorf("Synonyms(fear) = %v, want [fright]", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
	if _, err := Parse([]byte("love: [[unterminated")); err == nil {
		t.Error("Parse(invalid) error = nil, want error")
	}
}

func TestBuiltin(t *testing.T) {
	th := Builtin()
	if th.Len() == 0 {
		t.Fatal("Builtin() is empty")
	}
	if got := th.Synonyms("angry"); got != nil {
		t.Errorf("Synonyms(angry) = %v, want nil", got)
	}
	got := th.Synonyms("joy")
	if !reflect.DeepEqual(got, []string{"joyousness", "joyfulness"}) {
		t.Errorf("Synonyms(joy) = %v", got)
	}
}
