package store

import (
	"time"

	"github.com/trailbookapp/trailbook/internal/domain"
)

// SaveComposerDraft autosaves the story composer form. The saved-at
// timestamp is stamped here so callers pass only the form fields.
func (s *Store) SaveComposerDraft(draft domain.Draft) {
	draft.SavedAt = time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(draftComposerKey, draft)
}

// ComposerDraft returns the autosaved composer form, if any.
func (s *Store) ComposerDraft() (domain.Draft, bool) {
	var draft domain.Draft
	if !s.load(draftComposerKey, &draft) {
		return domain.Draft{}, false
	}
	return draft, true
}

// ClearComposerDraft discards the autosaved composer form.
func (s *Store) ClearComposerDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(draftComposerKey)
}

// SaveEditDraft autosaves the edit form for a single story. Each story
// keeps its own draft so abandoning one edit never clobbers another.
func (s *Store) SaveEditDraft(storyID string, draft domain.Draft) {
	draft.SavedAt = time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(draftEditKey(storyID), draft)
}

// EditDraft returns the autosaved edit form for a story, if any.
func (s *Store) EditDraft(storyID string) (domain.Draft, bool) {
	var draft domain.Draft
	if !s.load(draftEditKey(storyID), &draft) {
		return domain.Draft{}, false
	}
	return draft, true
}

// ClearEditDraft discards the autosaved edit form for a story.
func (s *Store) ClearEditDraft(storyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(draftEditKey(storyID))
}

// DismissBanner records that an announcement banner was dismissed so it
// stays hidden on later runs.
func (s *Store) DismissBanner(bannerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(bannerKey(bannerID), true)
}

// BannerDismissed reports whether a banner was previously dismissed.
func (s *Store) BannerDismissed(bannerID string) bool {
	return s.exists(bannerKey(bannerID))
}
