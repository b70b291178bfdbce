// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package textproc

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/models"
)

// ScriptStore is the storage used by Preprocessor.
type ScriptStore interface {
	UnprocessedScripts(ctx context.Context) ([]models.Script, error)
	UpdateProcessedDialogue(ctx context.Context, scriptID int64, processed string) error
}

// PreprocessResult summarizes one preprocessing pass.
type PreprocessResult struct {
	Processed int
	Skipped   int
}

// Preprocessor fills in processed dialogue for scripts that lack it.
type Preprocessor struct {
	store  ScriptStore
	logger zerolog.Logger
}

// NewPreprocessor creates a preprocessor.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewPreprocessor(store ScriptStore, logger zerolog.Logger) *Preprocessor {
	return &Preprocessor{
		store:  store,
		logger: logger.With().Str("component", "preprocess").Logger(),
	}
}

// Run processes every script without processed dialogue. Scripts whose
// dialogue yields no tokens are skipped and left unprocessed.
func (p *Preprocessor) Run(ctx context.Context) (PreprocessResult, error) {
	var result PreprocessResult

	scripts, err := p.store.UnprocessedScripts(ctx)
	if err != nil {
		return result, fmt.Errorf("list unprocessed scripts: %w", err)
	}
	if len(scripts) == 0 {
		p.logger.Debug().Msg("All scripts already preprocessed")
		return result, nil
	}

	for i := range scripts {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		processed := Process(scripts[i].Dialogue)
		if processed == "" {
			result.Skipped++
			continue
		}
		if err := p.store.UpdateProcessedDialogue(ctx, scripts[i].ID, processed); err != nil {
			return result, fmt.Errorf("update script %d: %w", scripts[i].ID, err)
		}
		result.Processed++
	}

	p.logger.Info().
		Int("processed", result.Processed).
		Int("skipped", result.Skipped).
		Msg("Script preprocessing completed")
	return result, nil
}
