package store

import "github.com/trailbookapp/trailbook/internal/domain"

// Prefs returns the current preferences record.
func (s *Store) Prefs() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetPrefs shallow-merges the patch onto the preferences and persists
// the state snapshot.
func (s *Store) SetPrefs(patch domain.PreferencesPatch) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = s.prefs.Merge(patch)
	s.persistStateLocked()
	s.emit(PrefsUpdatedEvent{Prefs: s.prefs})
	return s.prefs
}
