package store

import "github.com/trailbookapp/trailbook/internal/domain"

// Events emitted after committed mutations. Subscribers receive the
// new state, never an intermediate one.

// StoryCreatedEvent is emitted when a story is added.
type StoryCreatedEvent struct {
	Story domain.Story `json:"story"`
}

// StoryUpdatedEvent is emitted when an existing story changes
// (edits, likes, comments, image operations).
type StoryUpdatedEvent struct {
	Story domain.Story `json:"story"`
}

// StoryDeletedEvent is emitted when a story is removed.
type StoryDeletedEvent struct {
	StoryID string `json:"storyId"`
}

// PrefsUpdatedEvent is emitted when preferences change.
type PrefsUpdatedEvent struct {
	Prefs domain.Preferences `json:"prefs"`
}

// BookmarksUpdatedEvent is emitted when the bookmark list changes.
type BookmarksUpdatedEvent struct {
	Bookmarks domain.Bookmarks `json:"bookmarks"`
}

// StateReplacedEvent is emitted when the whole store is replaced
// (import, clear, seed bootstrap).
type StateReplacedEvent struct {
	StoryCount int `json:"storyCount"`
}
