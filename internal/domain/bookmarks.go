package domain

import "slices"

// Bookmarks is the "saved for later" list of story IDs,
// most-recently-toggled-on first. Entries are referential only: an ID
// with no matching story is inert, not an error.
type Bookmarks []string

// Contains checks if a story ID is bookmarked.
func (b Bookmarks) Contains(id string) bool {
	return slices.Contains(b, id)
}

// Toggle removes the ID if present, otherwise prepends it to keep
// newest-first ordering. Returns the new list and whether the ID is now
// bookmarked.
func (b Bookmarks) Toggle(id string) (Bookmarks, bool) {
	if i := slices.Index(b, id); i >= 0 {
		next := make(Bookmarks, 0, len(b)-1)
		next = append(next, b[:i]...)
		next = append(next, b[i+1:]...)
		return next, false
	}
	next := make(Bookmarks, 0, len(b)+1)
	next = append(next, id)
	next = append(next, b...)
	return next, true
}
