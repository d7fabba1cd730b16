package store

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/trailbookapp/trailbook/internal/domain"
)

// ExportAll returns a full snapshot of the store. Pure read, no
// mutation.
func (s *Store) ExportAll() domain.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stories := make([]domain.Story, len(s.stories))
	copy(stories, s.stories)
	bookmarks := make(domain.Bookmarks, len(s.bookmarks))
	copy(bookmarks, s.bookmarks)

	return domain.Bundle{
		Version:    domain.BundleVersion,
		Stories:    stories,
		Prefs:      s.prefs,
		Bookmarks:  bookmarks,
		ExportedAt: time.Now().UTC(),
	}
}

// rawBundle is the loosely-typed import shape.
type rawBundle struct {
	Stories   json.RawMessage `json:"stories"`
	Prefs     json.RawMessage `json:"prefs"`
	Bookmarks json.RawMessage `json:"bookmarks"`
}

// ImportAll replaces the entire store state from an export bundle.
// The shape is validated first: stories must be a sequence and prefs
// must be present. Bad shapes are a silent no-op (returns false), never
// an error. Stories are migrated through normalization, prefs merge
// over defaults, and bookmarks default to empty when absent.
func (s *Store) ImportAll(data []byte) bool {
	var bundle rawBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		if s.logger != nil {
			s.logger.Warn("import rejected: not a JSON object", "error", err)
		}
		return false
	}

	if !isJSONArray(bundle.Stories) || isAbsent(bundle.Prefs) {
		if s.logger != nil {
			s.logger.Warn("import rejected: missing stories sequence or prefs")
		}
		return false
	}

	stories := migrateStories(bundle.Stories)
	prefs := mergePrefs(bundle.Prefs)

	bookmarks := domain.Bookmarks{}
	if len(bundle.Bookmarks) > 0 {
		var ids []string
		if err := json.Unmarshal(bundle.Bookmarks, &ids); err == nil && ids != nil {
			bookmarks = domain.Bookmarks(ids)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stories = stories
	s.prefs = prefs
	s.bookmarks = bookmarks
	s.persistStateLocked()
	s.persistBookmarksLocked()
	s.emit(StateReplacedEvent{StoryCount: len(stories)})
	s.reindexAll(stories)

	if s.logger != nil {
		s.logger.Info("journal imported", "stories", len(stories), "bookmarks", len(bookmarks))
	}
	return true
}

// ClearAll empties the story collection while keeping preferences
// untouched. Bookmarks are left alone as well; they are inert without
// matching stories.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stories = []domain.Story{}
	s.persistStateLocked()
	s.emit(StateReplacedEvent{StoryCount: 0})
	s.reindexAll(nil)

	if s.logger != nil {
		s.logger.Info("journal cleared, preferences kept")
	}
}

// isJSONArray reports whether the raw value starts a JSON array.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// isAbsent reports whether the raw value is missing or JSON null.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
