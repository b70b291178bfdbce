// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides the two caches used by retrieval.

# LRU

LRU is a thread-safe, generic least-recently-used cache with per-entry TTL.
Retrieval keys it by normalized query text and stores the query's emotion
vector, so repeated searches skip the classification oracle.

  - O(1) Get, Add, Remove via a hashmap plus doubly-linked list
  - Lazy expiration on Get, bulk expiration with CleanupExpired
  - Hit and miss counters through Stats

# ProfileStore

ProfileStore persists per-actor emotion profiles in BadgerDB, each tagged
with a fingerprint of the dialogue it was computed from. An index rebuild
looks up every actor's current fingerprint and reuses the stored profile
when the dialogue has not changed, avoiding a full reclassification.

Example:

	store, err := cache.OpenProfileStore("/data/profiles")
	if err != nil {
	    return err
	}
	defer store.Close()

	fp := cache.Fingerprint(dialogue)
	if p, ok, err := store.Get(actorID, fp); err == nil && ok {
	    // reuse p
	}
*/
package cache
