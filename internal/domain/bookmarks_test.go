package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookmarks_Toggle_PrependsNewestFirst(t *testing.T) {
	b := Bookmarks{"story-1", "story-2"}

	next, on := b.Toggle("story-3")

	assert.True(t, on)
	assert.Equal(t, Bookmarks{"story-3", "story-1", "story-2"}, next)
}

func TestBookmarks_Toggle_RemovesExisting(t *testing.T) {
	b := Bookmarks{"story-1", "story-2", "story-3"}

	next, on := b.Toggle("story-2")

	assert.False(t, on)
	assert.Equal(t, Bookmarks{"story-1", "story-3"}, next)
}

func TestBookmarks_Toggle_SelfInverseMembership(t *testing.T) {
	b := Bookmarks{"story-1", "story-2"}

	once, _ := b.Toggle("story-9")
	twice, on := once.Toggle("story-9")

	// Membership round-trips; order of other ids may shift.
	assert.False(t, on)
	assert.False(t, twice.Contains("story-9"))
	assert.ElementsMatch(t, b, twice)
}

func TestBookmarks_Toggle_NilList(t *testing.T) {
	var b Bookmarks

	next, on := b.Toggle("story-1")

	assert.True(t, on)
	assert.Equal(t, Bookmarks{"story-1"}, next)
}

func TestBookmarks_Contains(t *testing.T) {
	b := Bookmarks{"story-1"}

	assert.True(t, b.Contains("story-1"))
	assert.False(t, b.Contains("story-2"))
}
