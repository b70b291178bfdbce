// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package auth guards operator endpoints with HS256 bearer tokens.
//
// Marquee has no user accounts. An operator holding JWT_SECRET mints a
// token with the admin role (see cmd/evaluate -rebuild) and presents it as
//
//	Authorization: Bearer <token>
//
// RequireRole rejects requests without a valid token carrying the role.
package auth
