// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

const profileKeyPrefix = "profile:"

// Fingerprint hashes an actor's dialogue with 64-bit FNV-1a. Scripts are
// separated by a zero byte so ["ab", "c"] and ["a", "bc"] differ.
func Fingerprint(dialogue []string) uint64 {
	h := fnv.New64a()
	for _, d := range dialogue {
		_, _ = h.Write([]byte(d))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

type storedProfile struct {
	Fingerprint uint64                `json:"fingerprint"`
	Profile     models.EmotionProfile `json:"profile"`
}

// ProfileStore is a BadgerDB-backed cache of actor emotion profiles keyed
// by actor id and tagged with a dialogue fingerprint.
type ProfileStore struct {
	db *badger.DB
}

// OpenProfileStore opens (or creates) a store at path.
func OpenProfileStore(path string) (*ProfileStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}
	logging.Info().Str("path", path).Msg("Profile cache opened")
	return &ProfileStore{db: db}, nil
}

// NewProfileStore wraps an already open database.
func NewProfileStore(db *badger.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Close closes the underlying database.
func (s *ProfileStore) Close() error {
	return s.db.Close()
}

func profileKey(actorID int64) []byte {
	return []byte(profileKeyPrefix + strconv.FormatInt(actorID, 10))
}

// Get returns the stored profile for actorID if it was computed from
// dialogue with the given fingerprint.
func (s *ProfileStore) Get(actorID int64, fingerprint uint64) (*models.EmotionProfile, bool, error) {
	var stored storedProfile
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(actorID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if err != nil {
		return nil, false, err
	}
	if !found || stored.Fingerprint != fingerprint {
		return nil, false, nil
	}
	return &stored.Profile, true, nil
}

// Put stores profiles with their fingerprints in one transaction.
func (s *ProfileStore) Put(profiles []models.EmotionProfile, fingerprints map[int64]uint64) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range profiles {
		p := profiles[i]
		data, err := json.Marshal(storedProfile{Fingerprint: fingerprints[p.ActorID], Profile: p})
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
		if err := wb.Set(profileKey(p.ActorID), data); err != nil {
			return fmt.Errorf("set profile: %w", err)
		}
	}
	return wb.Flush()
}

// Delete removes the profile for actorID.
func (s *ProfileStore) Delete(actorID int64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(profileKey(actorID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete profile: %w", err)
		}
		return nil
	})
}

// Clear removes every stored profile.
func (s *ProfileStore) Clear() error {
	return s.db.DropPrefix([]byte(profileKeyPrefix))
}

// Len counts stored profiles.
func (s *ProfileStore) Len() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(profileKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
