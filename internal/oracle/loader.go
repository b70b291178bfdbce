// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package oracle

import (
	"context"
	"sync"
)

// Factory constructs a classifier. It may block, for example while a model
// server warms up.
type Factory func(ctx context.Context) (Classifier, error)

// Loader runs its Factory at most once and hands the same classifier to every
// caller. A failed load is remembered until Reset so concurrent callers do
// not each retry the expensive initialization.
type Loader struct {
	factory Factory

	// initMu serializes factory runs. mu guards the result and is never held
	// while the factory runs, so Loaded does not wait on a warm-up.
	initMu sync.Mutex

	mu         sync.Mutex
	done       bool
	classifier Classifier
	err        error
}

// NewLoader creates a loader around factory.
func NewLoader(factory Factory) *Loader {
	return &Loader{factory: factory}
}

// Get returns the loaded classifier, loading it on first use.
func (l *Loader) Get(ctx context.Context) (Classifier, error) {
	if done, c, err := l.result(); done {
		return c, err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()
	if done, c, err := l.result(); done {
		return c, err
	}

	c, err := l.factory(ctx)
	l.mu.Lock()
	l.classifier, l.err, l.done = c, err, true
	l.mu.Unlock()
	return c, err
}

func (l *Loader) result() (bool, Classifier, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done, l.classifier, l.err
}

// Loaded reports whether a classifier has been loaded successfully.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done && l.err == nil
}

// Reset forgets a failed load so the next Get tries again. A successful load
// is kept.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done && l.err != nil {
		l.done = false
		l.classifier = nil
		l.err = nil
	}
}
