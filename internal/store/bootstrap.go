package store

import (
	"context"
	"encoding/json"
	"os"

	"github.com/trailbookapp/trailbook/internal/domain"
)

// seedFile is the on-disk seed shape. Stories stay raw so seed authors
// get the same normalization tolerance as imported data.
type seedFile struct {
	Stories   json.RawMessage  `json:"stories"`
	Prefs     *json.RawMessage `json:"prefs"`
	Bookmarks []string         `json:"bookmarks"`
}

// Bootstrap populates an empty store from the seed file. A store that
// already holds stories is left alone, so seeding happens at most once
// per journal. Seed problems are logged and absorbed; a missing or
// broken seed never prevents startup.
func (s *Store) Bootstrap(ctx context.Context, seedPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	populated := len(s.stories) > 0
	s.mu.RUnlock()
	if populated {
		return nil
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		if s.logger != nil {
			s.logger.Info("no seed data, starting empty", "path", seedPath)
		}
		return nil
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		if s.logger != nil {
			s.logger.Warn("seed file is not valid JSON, starting empty", "path", seedPath, "error", err)
		}
		return nil
	}
	if !isJSONArray(seed.Stories) {
		if s.logger != nil {
			s.logger.Warn("seed file has no story sequence, starting empty", "path", seedPath)
		}
		return nil
	}

	stories := migrateStories(seed.Stories)

	s.mu.Lock()
	s.stories = stories
	if seed.Prefs != nil {
		s.prefs = mergePrefs(*seed.Prefs)
	}
	if seed.Bookmarks != nil {
		s.bookmarks = domain.Bookmarks(seed.Bookmarks)
	}
	s.persistStateLocked()
	s.persistBookmarksLocked()
	s.emit(StateReplacedEvent{StoryCount: len(stories)})
	s.reindexAll(stories)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("journal seeded", "path", seedPath, "stories", len(stories))
	}
	return nil
}
