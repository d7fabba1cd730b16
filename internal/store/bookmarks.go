package store

import "github.com/trailbookapp/trailbook/internal/domain"

// Bookmarks returns a copy of the bookmark list, most recently
// toggled-on first.
func (s *Store) Bookmarks() domain.Bookmarks {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.Bookmarks, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// ToggleBookmark removes the ID if bookmarked, otherwise prepends it.
// Bookmarks are referential only; an ID with no matching story is fine.
// Persists the bookmark list independently of stories. Returns whether
// the ID is now bookmarked.
func (s *Store) ToggleBookmark(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, on := s.bookmarks.Toggle(storyID)
	s.bookmarks = next
	s.persistBookmarksLocked()
	s.emit(BookmarksUpdatedEvent{Bookmarks: next})
	return on
}
