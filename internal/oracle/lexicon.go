// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package oracle

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/textproc"
)

// lexiconSmoothing is added to every label's hit count so segments without
// any lexicon hit get a uniform distribution.
const lexiconSmoothing = 0.5

// LexiconClassifier scores segments by counting lexicon keywords per label.
// For each segment the probability of a label is
//
//	(hits(label) + s) / (hits(all) + 6s)
//
// and every label is reported, highest first, mirroring a classifier that
// returns its full distribution.
type LexiconClassifier struct {
	keywords map[string][]int // token -> label indices
}

// NewLexiconClassifier builds a classifier from label -> keywords. Labels
// outside the emotion set are rejected.
func NewLexiconClassifier(lexicon map[string][]string) (*LexiconClassifier, error) {
	keywords := make(map[string][]int)
	for label, words := range lexicon {
		idx := models.LabelIndex(strings.ToLower(label))
		if idx < 0 {
			return nil, fmt.Errorf("lexicon: unknown emotion label %q", label)
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				keywords[w] = append(keywords[w], idx)
			}
		}
	}
	return &LexiconClassifier{keywords: keywords}, nil
}

// LoadLexicon reads a YAML lexicon mapping each label to its keywords.
func LoadLexicon(path string) (*LexiconClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var lexicon map[string][]string
	if err := yaml.Unmarshal(data, &lexicon); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	return NewLexiconClassifier(lexicon)
}

// Classify implements Classifier.
func (l *LexiconClassifier) Classify(ctx context.Context, segments []string) ([][]models.LabelScore, error) {
	out := make([][]models.LabelScore, len(segments))
	for i, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = l.score(seg)
	}
	return out, nil
}

func (l *LexiconClassifier) score(segment string) []models.LabelScore {
	var hits [models.NumEmotions]float64
	var total float64
	for _, tok := range textproc.Tokenize(segment) {
		for _, idx := range l.keywords[tok] {
			hits[idx]++
			total++
		}
	}

	denom := total + lexiconSmoothing*models.NumEmotions
	scores := make([]models.LabelScore, models.NumEmotions)
	for i, label := range models.EmotionLabels {
		scores[i] = models.LabelScore{Label: label, Score: (hits[i] + lexiconSmoothing) / denom}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}

// BuiltinLexicon returns a classifier over a small general-purpose emotion
// lexicon.
func BuiltinLexicon() *LexiconClassifier {
	l, err := NewLexiconClassifier(map[string][]string{
		models.LabelLove: {
			"love", "loved", "loves", "loving", "lover", "darling", "sweetheart", "kiss", "kissed",
			"romance", "romantic", "heart", "adore", "beloved", "marry", "married", "wedding", "tender", "honey",
		},
		models.LabelJoy: {
			"happy", "happiness", "joy", "glad", "laugh", "laughing", "smile", "fun", "funny", "wonderful",
			"great", "celebrate", "delight", "cheerful", "amazing", "excited", "party", "yay", "cheer",
		},
		models.LabelAnger: {
			"angry", "anger", "hate", "furious", "rage", "mad", "kill", "damn", "fight", "revenge",
			"shut", "idiot", "bastard", "fury", "destroy", "punch", "war", "enemy", "betray",
		},
		models.LabelSadness: {
			"sad", "sorry", "cry", "crying", "tears", "lost", "alone", "lonely", "grief", "miss",
			"died", "death", "dead", "funeral", "goodbye", "hurt", "pain", "broken", "mourn",
		},
		models.LabelSurprise: {
			"surprise", "surprised", "wow", "whoa", "unbelievable", "sudden", "suddenly", "shock", "shocked",
			"unexpected", "amazed", "astonished", "incredible", "really", "believe", "strange", "twist",
		},
		models.LabelFear: {
			"afraid", "fear", "scared", "scary", "terrified", "horror", "monster", "danger", "dangerous",
			"run", "hide", "help", "scream", "nightmare", "ghost", "dark", "panic", "threat", "blood",
		},
	})
	if err != nil {
		panic(err) // built-in labels are constants
	}
	return l
}
