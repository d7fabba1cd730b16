package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStory_ToggleLike_PairedRoundTrip(t *testing.T) {
	story := &Story{ID: "story-1", Likes: 3, Liked: false}
	now := time.Now()

	story.ToggleLike(now)
	assert.Equal(t, 4, story.Likes)
	assert.True(t, story.Liked)

	story.ToggleLike(now.Add(time.Second))
	assert.Equal(t, 3, story.Likes)
	assert.False(t, story.Liked)
}

func TestStory_ToggleLike_UpdatesTimestamp(t *testing.T) {
	old := time.Now().Add(-time.Hour)
	story := &Story{ID: "story-1", UpdatedAt: old}

	story.ToggleLike(time.Now())

	assert.True(t, story.UpdatedAt.After(old))
}

func TestStory_AddComment_AppendsVerbatim(t *testing.T) {
	story := &Story{ID: "story-1"}
	now := time.Now()

	story.AddComment("  what a view  ", now)
	story.AddComment("", now)

	assert.Len(t, story.Comments, 2)
	assert.Equal(t, "  what a view  ", story.Comments[0].Text)
	assert.Equal(t, "", story.Comments[1].Text)
	assert.Equal(t, now, story.Comments[0].Date)
}

func TestStory_AppendImages_DedupesPreservingOrder(t *testing.T) {
	story := &Story{ID: "story-1", Images: []string{"a", "b"}}

	story.AppendImages([]string{"b", "c", "a", "d"}, time.Now())

	assert.Equal(t, []string{"a", "b", "c", "d"}, story.Images)
}

func TestStory_RemoveImageAt(t *testing.T) {
	story := &Story{ID: "story-1", Images: []string{"a", "b", "c"}}

	removed := story.RemoveImageAt(1, time.Now())

	assert.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, story.Images)
}

func TestStory_RemoveImageAt_OutOfBoundsIsNoop(t *testing.T) {
	old := time.Now().Add(-time.Hour)
	story := &Story{ID: "story-1", Images: []string{"a"}, UpdatedAt: old}

	assert.False(t, story.RemoveImageAt(-1, time.Now()))
	assert.False(t, story.RemoveImageAt(1, time.Now()))
	assert.Equal(t, []string{"a"}, story.Images)
	assert.Equal(t, old, story.UpdatedAt)
}

func TestVisibility_Valid(t *testing.T) {
	assert.True(t, VisibilityPrivate.Valid())
	assert.True(t, VisibilityFriends.Valid())
	assert.True(t, VisibilityPublic.Valid())
	assert.False(t, Visibility("pubic").Valid())
	assert.False(t, Visibility("").Valid())
}
