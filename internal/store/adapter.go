package store

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/normalize"
)

// The persistence adapter: key-value durable storage with JSON
// (de)serialization. Loads fail soft - a missing or unparsable value
// simply reports absent so the caller falls back to defaults. Saves are
// fire-and-forget from the data model's perspective; failures are
// logged and recorded in the save status, never returned into mutation
// logic.

// load reads and decodes the value stored under key into dest.
// Returns false when the key is absent or the stored bytes are corrupt.
func (s *Store) load(key string, dest any) bool {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to read persisted value", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		if s.logger != nil {
			s.logger.Warn("persisted value is corrupt, falling back", "key", key, "error", err)
		}
		return false
	}
	return true
}

// save serializes value to JSON and stores it under key. Errors are
// swallowed; they only flip the save status flag. Caller must hold mu.
func (s *Store) save(key string, value any) {
	data, err := json.Marshal(value)
	if err == nil {
		err = s.db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte(key), data)
		})
	}

	if err != nil {
		s.saveHealthy = false
		if s.logger != nil {
			s.logger.Error("failed to persist value", "key", key, "error", err)
		}
		return
	}
	s.saveHealthy = true
}

// remove deletes a key. Missing keys are fine.
func (s *Store) remove(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("failed to delete persisted value", "key", key, "error", err)
	}
}

// exists checks if a key is present without decoding it.
func (s *Store) exists(key string) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})
	return err == nil
}

// persistedState is the durable shape of the state key. Reading keeps
// the stories raw so migration can absorb malformed history.
type persistedState struct {
	Stories json.RawMessage `json:"stories"`
	Prefs   json.RawMessage `json:"prefs"`
}

// statePayload is the write-side shape of the state key.
type statePayload struct {
	Stories []domain.Story     `json:"stories"`
	Prefs   domain.Preferences `json:"prefs"`
}

// persistStateLocked writes the {stories, prefs} snapshot. Caller must
// hold mu.
func (s *Store) persistStateLocked() {
	s.save(stateKey, statePayload{Stories: s.stories, Prefs: s.prefs})
}

// persistBookmarksLocked writes the bookmark list. Caller must hold mu.
func (s *Store) persistBookmarksLocked() {
	s.save(bookmarksKey, s.bookmarks)
}

// migrateStories normalizes a possibly-malformed persisted story
// sequence. Non-sequence input yields an empty collection.
func migrateStories(raw json.RawMessage) []domain.Story {
	return normalize.Stories(raw)
}

// mergePrefs merges persisted preferences over defaults; absent or
// corrupt data leaves the defaults intact.
func mergePrefs(raw json.RawMessage) domain.Preferences {
	prefs := domain.DefaultPreferences()
	if len(raw) > 0 {
		// Unmarshal on top of defaults gives shallow merge semantics:
		// fields missing from disk keep their default values.
		_ = json.Unmarshal(raw, &prefs)
	}
	return prefs
}
