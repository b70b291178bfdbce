// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/retrieval"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// maxQueryRunes bounds the query text sent to the classifier. Longer queries
// are truncated, not rejected.
const maxQueryRunes = 2000

// parseRankRequest reads a search from the query string and, for POST, a JSON
// body. Query string parameters override body fields.
func parseRankRequest(r *http.Request) (retrieval.RankRequest, error) {
	var req retrieval.RankRequest
	if r.Method == http.MethodPost && r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSONBody(r, &req); err != nil {
			return req, err
		}
	}

	q := r.URL.Query()
	if v, ok := firstOf(q, "q", "query"); ok {
		req.Query = v
	}
	req.Query = truncateRunes(req.Query, maxQueryRunes)
	if v := q.Get("mode"); v != "" {
		req.Mode = v
	}
	if v := q.Get("top_k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("top_k must be an integer")
		}
		req.TopK = &n
	}
	if v := q.Get("fame_weight"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("fame_weight must be a number")
		}
		req.FameWeight = &f
	}
	if v := q.Get("hydrate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("hydrate must be a boolean")
		}
		req.Hydrate = b
	}
	return req, nil
}

// parseRebuildRequest reads mode, reclassify and async from the query string.
func parseRebuildRequest(r *http.Request) (req retrieval.RebuildRequest, async bool, err error) {
	q := r.URL.Query()
	req.Mode = q.Get("mode")
	if v := q.Get("reclassify"); v != "" {
		if req.Reclassify, err = strconv.ParseBool(v); err != nil {
			return req, false, fmt.Errorf("reclassify must be a boolean")
		}
	}
	if v := q.Get("async"); v != "" {
		if async, err = strconv.ParseBool(v); err != nil {
			return req, false, fmt.Errorf("async must be a boolean")
		}
	}
	return req, async, nil
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func firstOf(q url.Values, keys ...string) (string, bool) {
	for _, k := range keys {
		if q.Has(k) {
			return q.Get(k), true
		}
	}
	return "", false
}
