// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package oracle provides clients for the emotion classification oracle.

The oracle is opaque: given text segments it returns, per segment, a list of
(label, score) pairs over the six emotion labels. Three implementations are
available:

  - HTTPClassifier talks to a remote inference server.
  - LexiconClassifier scores text offline against a keyword lexicon.
  - BreakerClassifier wraps another classifier with a circuit breaker.

Loader guarantees the selected classifier is initialized once and then shared
by every caller.
*/
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// Classifier scores text segments. Implementations must be safe for
// concurrent use.
type Classifier interface {
	Classify(ctx context.Context, segments []string) ([][]models.LabelScore, error)
}

// Modes accepted by Config.Mode.
const (
	ModeHTTP    = "http"
	ModeLexicon = "lexicon"
)

// ErrUnavailable reports that the oracle could not be reached or loaded.
var ErrUnavailable = errors.New("classification oracle unavailable")

// Config selects and tunes the oracle.
type Config struct {
	Mode string

	// HTTP mode
	URL               string
	Timeout           time.Duration
	BatchSize         int
	RequestsPerSecond float64
	Burst             int

	// Lexicon mode; empty uses the built-in lexicon.
	LexiconPath string

	// Circuit breaker around the classifier (HTTP mode only)
	BreakerEnabled bool
}

// NewFactory returns a Factory that builds the classifier described by cfg.
// In HTTP mode the factory verifies the server responds before returning.
func NewFactory(cfg Config) Factory {
	return func(ctx context.Context) (Classifier, error) {
		switch cfg.Mode {
		case ModeLexicon, "":
			if cfg.LexiconPath == "" {
				return BuiltinLexicon(), nil
			}
			return LoadLexicon(cfg.LexiconPath)
		case ModeHTTP:
			client := NewHTTPClassifier(HTTPConfig{
				BaseURL:           cfg.URL,
				Timeout:           cfg.Timeout,
				BatchSize:         cfg.BatchSize,
				RequestsPerSecond: cfg.RequestsPerSecond,
				Burst:             cfg.Burst,
			})
			if err := client.Ping(ctx); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
			}
			if cfg.BreakerEnabled {
				return NewBreakerClassifier("classification-oracle", client), nil
			}
			return client, nil
		default:
			return nil, fmt.Errorf("unknown oracle mode %q", cfg.Mode)
		}
	}
}
