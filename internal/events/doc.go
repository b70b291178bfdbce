// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package events carries index lifecycle events over Watermill.
//
// Two topics travel on an in-process GoChannel bus:
//
//	index.rebuild.requested  asynchronous rebuild requests from the API
//	index.rebuilt            published after every successful rebuild
//
// A Forwarder can copy index.rebuilt to a NATS subject so other systems
// learn about fresh indexes. NATS is optional; without it the bus is purely
// in-process.
package events
