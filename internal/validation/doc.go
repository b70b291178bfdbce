// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation validates API request structs with
// go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata after first use and reports fields by their JSON names, so error
// details match what the client sent:
//
//	req := retrieval.RankRequest{Query: q, Mode: "bogus"}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Message == "mode must be one of: primary lsa"
//	}
//
// Query text is never validated: malformed or oversized queries degrade
// during ranking instead of failing the request.
package validation
