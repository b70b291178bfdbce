// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "time"

// Emotion labels produced by the classifier.
const (
	LabelLove     = "love"
	LabelJoy      = "joy"
	LabelAnger    = "anger"
	LabelSadness  = "sadness"
	LabelSurprise = "surprise"
	LabelFear     = "fear"
)

// NumEmotions is the dimensionality of every emotion vector.
const NumEmotions = 6

// EmotionLabels is the fixed component order of EmotionVector.
var EmotionLabels = [NumEmotions]string{
	LabelLove,
	LabelJoy,
	LabelAnger,
	LabelSadness,
	LabelSurprise,
	LabelFear,
}

// LabelIndex returns the vector position of label, or -1 if it is not an
// emotion label.
func LabelIndex(label string) int {
	for i, l := range EmotionLabels {
		if l == label {
			return i
		}
	}
	return -1
}

// EmotionVector is a point in emotion space, ordered as EmotionLabels.
type EmotionVector [NumEmotions]float64

// LabelScore is one (label, probability) pair reported by the classifier.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// EmotionProfile is the mean classifier output over an actor's dialogue.
type EmotionProfile struct {
	ActorID      int64     `json:"actor_id"`
	Love         float64   `json:"love"`
	Joy          float64   `json:"joy"`
	Anger        float64   `json:"anger"`
	Sadness      float64   `json:"sadness"`
	Surprise     float64   `json:"surprise"`
	Fear         float64   `json:"fear"`
	ClassifiedAt time.Time `json:"classified_at"`
}

// Vector returns the profile in EmotionLabels order.
func (p *EmotionProfile) Vector() EmotionVector {
	return EmotionVector{p.Love, p.Joy, p.Anger, p.Sadness, p.Surprise, p.Fear}
}

// NewEmotionProfile builds a profile from a vector in EmotionLabels order.
func NewEmotionProfile(actorID int64, v EmotionVector, at time.Time) EmotionProfile {
	return EmotionProfile{
		ActorID:      actorID,
		Love:         v[0],
		Joy:          v[1],
		Anger:        v[2],
		Sadness:      v[3],
		Surprise:     v[4],
		Fear:         v[5],
		ClassifiedAt: at,
	}
}
