package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailbookapp/trailbook/internal/domain"
)

func exportStory() domain.Story {
	created := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	mood := "joyful"
	location := "Lisbon"
	return domain.Story{
		ID:         "story-abc123",
		Title:      "Morning in Alfama",
		Body:       "Tiles, trams, and too much coffee.",
		Mood:       &mood,
		Location:   &location,
		Visibility: domain.VisibilityPublic,
		Likes:      2,
		Comments: []domain.Comment{
			{Text: "take me next time", Date: created.Add(time.Hour)},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStoryPayload(t *testing.T) {
	payload := StoryPayload(exportStory(), "Ada")

	assert.Equal(t, "story-abc123", payload.ID)
	assert.Equal(t, "Morning in Alfama", payload.Title)
	assert.Equal(t, "public", payload.Visibility)
	require.NotNil(t, payload.DisplayName)
	assert.Equal(t, "Ada", *payload.DisplayName)
	assert.Equal(t, 2, payload.Likes)
	assert.Equal(t, Source, payload.Source)
	assert.False(t, payload.ExportedAt.IsZero())
}

func TestStoryPayload_NoBylineWhenAnonymous(t *testing.T) {
	story := exportStory()
	story.IsAnonymous = true

	payload := StoryPayload(story, "Ada")
	assert.Nil(t, payload.DisplayName)
}

func TestStoryPayload_NoBylineWhenPrivate(t *testing.T) {
	story := exportStory()
	story.Visibility = domain.VisibilityPrivate

	payload := StoryPayload(story, "Ada")
	assert.Nil(t, payload.DisplayName)
}

func TestStoryPayload_EmptyCommentsNotNull(t *testing.T) {
	story := exportStory()
	story.Comments = nil

	data, err := json.Marshal(StoryPayload(story, ""))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"comments":[]`)
}

func TestRenderText(t *testing.T) {
	text := RenderText(exportStory(), "Ada")
	lines := strings.Split(text, "\n")

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Morning in Alfama", lines[0])
	assert.Contains(t, lines[1], "public")
	assert.Contains(t, lines[1], "joyful")
	assert.Contains(t, lines[1], "Lisbon")
	assert.Contains(t, lines[1], "By Ada")
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "Tiles, trams, and too much coffee.", lines[3])
	assert.Contains(t, text, "--- Comments ---")
	assert.Contains(t, text, "take me next time")
}

func TestRenderText_UntitledAndBare(t *testing.T) {
	story := domain.Story{
		ID:         "story-bare",
		Visibility: domain.VisibilityPrivate,
		CreatedAt:  time.Now(),
	}

	text := RenderText(story, "")
	lines := strings.Split(text, "\n")
	assert.Equal(t, "(untitled)", lines[0])
	assert.NotContains(t, text, "--- Comments ---")
	assert.NotContains(t, text, "By ")
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSON(dir, exportStory(), "Ada")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "morning-in-alfama.json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload StoryJSON
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "story-abc123", payload.ID)
}

func TestWriteText(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteText(dir, exportStory(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "morning-in-alfama.txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Morning in Alfama")
}

func TestWriteBundle(t *testing.T) {
	path := t.TempDir() + "/backup.json"

	bundle := domain.Bundle{
		Version:    domain.BundleVersion,
		Stories:    []domain.Story{exportStory()},
		Prefs:      domain.DefaultPreferences(),
		Bookmarks:  domain.Bookmarks{"story-abc123"},
		ExportedAt: time.Now().UTC(),
	}
	require.NoError(t, WriteBundle(path, bundle))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Bundle
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Version)
	require.Len(t, decoded.Stories, 1)
}
