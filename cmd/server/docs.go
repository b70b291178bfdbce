// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main provides the Marquee HTTP server
//
// @title Marquee API
// @version 1.0
// @description Emotion-aware actor search.
// @description
// @description Queries are classified into six emotions and matched against
// @description the emotional profile of each actor's dialogue, blended with a
// @description popularity prior.
// @description
// @description ## Authentication
// @description
// @description Index rebuilds require a bearer token with the admin role when
// @description the server is configured with a JWT secret.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "NOT_READY", "message": "index not built yet"},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token, e.g. "Bearer eyJ...".
//
// @tag.name Search
// @tag.description Actor search
//
// @tag.name Index
// @tag.description Index status and rebuilds
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
