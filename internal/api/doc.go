// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api serves the Marquee HTTP API on a chi router.

Routes:

	GET|POST /api/v1/search/actors     rank actors for a free-text query
	POST     /api/v1/index/rebuild     rebuild indexes (bearer token when JWT_SECRET is set)
	GET      /api/v1/index/status      readiness, index sizes, last build
	GET      /api/v1/health/live       liveness probe
	GET      /api/v1/health/ready      readiness probe, 503 until the first build
	GET      /metrics                  Prometheus
	GET      /swagger/*                OpenAPI UI

Every JSON response uses the same envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "NOT_READY", "message": "...", "request_id": "..."}, "meta": {...}}

Retrieval errors map to statuses in errors.go: an invalid mode is 400, a
rebuild already running is 409, and an unbuilt index, classifier outage or
database outage is 503.
*/
package api
