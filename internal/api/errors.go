// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/retrieval"
)

// serviceError maps a retrieval error to a status and error code.
func serviceError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, retrieval.ErrInvalidMode):
		return http.StatusBadRequest, ErrCodeInvalidMode, err.Error()
	case errors.Is(err, retrieval.ErrBuildInProgress):
		return http.StatusConflict, ErrCodeConflict, "An index rebuild is already in progress"
	case errors.Is(err, retrieval.ErrNotReady):
		return http.StatusServiceUnavailable, ErrCodeNotReady, "The search index has not been built yet"
	case errors.Is(err, retrieval.ErrOracleUnavailable):
		return http.StatusServiceUnavailable, ErrCodeOracleUnavailable, "The emotion classifier is unavailable"
	case errors.Is(err, retrieval.ErrRepository):
		return http.StatusServiceUnavailable, ErrCodeRepositoryError, "The catalog database is unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "The request timed out"
	case errors.Is(err, context.Canceled):
		// client went away; status is for the access log only
		return 499, ErrCodeServiceUnavailable, "The request was canceled"
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "An internal error occurred"
	}
}

func (rw *ResponseWriter) serviceError(err error) {
	status, code, message := serviceError(err)
	rw.Error(status, code, message)
}
