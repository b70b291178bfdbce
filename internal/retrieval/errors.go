// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package retrieval

import "errors"

var (
	// ErrOracleUnavailable reports that the classification oracle could not
	// be loaded or failed during an index build.
	ErrOracleUnavailable = errors.New("classification oracle unavailable")

	// ErrRepository reports a repository call that still failed after retries.
	ErrRepository = errors.New("repository error")

	// ErrNotReady reports a rank request before the first index build.
	ErrNotReady = errors.New("index not ready")

	// ErrBuildInProgress reports a rebuild request while another runs.
	ErrBuildInProgress = errors.New("index build already in progress")

	// ErrInvalidMode reports an unknown ranking or rebuild mode.
	ErrInvalidMode = errors.New("invalid mode")
)
