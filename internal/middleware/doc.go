// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides the net/http middleware shared by the API router.

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled by
    chi route pattern so path parameters do not explode cardinality
  - Compression: gzip for clients that accept it

All middleware has the func(http.Handler) http.Handler shape used by chi.
*/
package middleware
