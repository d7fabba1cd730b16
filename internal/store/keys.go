package store

// Persisted key layout. The state and bookmark keys are versioned so a
// future format change can migrate explicitly.
const (
	stateKey     = "state:v2"     // {stories, prefs}
	bookmarksKey = "bookmarks:v2" // [id, id, ...]
	sessionKey   = "session:v1"   // {email, displayName}

	draftComposerKey = "draft:composer"
	draftEditPrefix  = "draft:edit:"
	bannerPrefix     = "banner:dismissed:"
)

// draftEditKey returns the autosave key for an in-progress edit.
func draftEditKey(storyID string) string {
	return draftEditPrefix + storyID
}

// bannerKey returns the per-story public-banner dismissal key. The
// value is a presence sentinel.
func bannerKey(storyID string) string {
	return bannerPrefix + storyID
}
