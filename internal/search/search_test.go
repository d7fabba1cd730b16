package search

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailbookapp/trailbook/internal/domain"
)

// setupTestIndex creates a temporary search index for testing.
func setupTestIndex(t *testing.T) (*Index, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "search-test-*")
	require.NoError(t, err)

	index, err := NewIndex(Options{
		DataPath: tmpDir,
		Logger:   nil,
	})
	require.NoError(t, err)

	cleanup := func() {
		_ = index.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return index, cleanup
}

func testStory(id, title, body string, tags ...string) domain.Story {
	now := time.Now().UTC()
	return domain.Story{
		ID:         id,
		Title:      title,
		Body:       body,
		Visibility: domain.VisibilityPrivate,
		Tags:       tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestNewIndex(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_IndexStory(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	err := index.IndexStory(testStory("story-1", "Sunrise over the Dolomites", "We woke at five.", "alps"))
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestIndex_DeleteStory(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "Short stay", "")))
	require.NoError(t, index.DeleteStory("story-1"))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_Rebuild(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-old", "Stale entry", "")))

	stories := []domain.Story{
		testStory("story-1", "Night train to Lisbon", "The sleeper car rattled."),
		testStory("story-2", "Lisbon on foot", "Tiles everywhere."),
	}
	require.NoError(t, index.Rebuild(stories))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	// The pre-rebuild story is gone
	result, err := index.Search(context.Background(), Params{Query: "stale", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), result.Total)
}

func TestSearch_TitleMatch(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "Sunrise over the Dolomites", "We woke at five.")))
	require.NoError(t, index.IndexStory(testStory("story-2", "Rainy day in Bergen", "Umbrella weather.")))

	result, err := index.Search(context.Background(), Params{Query: "sunrise", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "story-1", result.Hits[0].ID)
	assert.Equal(t, "Sunrise over the Dolomites", result.Hits[0].Title)
}

func TestSearch_BodyMatch(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "Day four", "The glacier lagoon was unreal.")))

	result, err := index.Search(context.Background(), Params{Query: "glacier", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "story-1", result.Hits[0].ID)
}

func TestSearch_TagFilter(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "Coast walk", "", "beach", "sunset")))
	require.NoError(t, index.IndexStory(testStory("story-2", "Summit push", "", "alps")))

	result, err := index.Search(context.Background(), Params{Tags: []string{"beach"}, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "story-1", result.Hits[0].ID)
	assert.Contains(t, result.Hits[0].Tags, "beach")
}

func TestSearch_VisibilityFilter(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	private := testStory("story-1", "Quiet thoughts", "")
	public := testStory("story-2", "Open letter", "")
	public.Visibility = domain.VisibilityPublic

	require.NoError(t, index.IndexStory(private))
	require.NoError(t, index.IndexStory(public))

	result, err := index.Search(context.Background(), Params{Visibility: "public", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "story-2", result.Hits[0].ID)
}

func TestSearch_MoodFilter(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	happy := testStory("story-1", "Good day", "")
	mood := "happy"
	happy.Mood = &mood
	require.NoError(t, index.IndexStory(happy))
	require.NoError(t, index.IndexStory(testStory("story-2", "Plain day", "")))

	result, err := index.Search(context.Background(), Params{Mood: "happy", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "story-1", result.Hits[0].ID)
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "One", "")))
	require.NoError(t, index.IndexStory(testStory("story-2", "Two", "")))

	result, err := index.Search(context.Background(), Params{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Total)
}

func TestSearch_FuzzyMatch(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "Kyoto gardens", "")))

	// One-character typo still matches
	result, err := index.Search(context.Background(), Params{Query: "kyotu", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Total)
}

func TestSearch_TagFacets(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "A", "", "beach")))
	require.NoError(t, index.IndexStory(testStory("story-2", "B", "", "beach", "sunset")))

	result, err := index.Search(context.Background(), Params{Limit: 10, IncludeFacets: true})
	require.NoError(t, err)

	counts := map[string]int{}
	for _, facet := range result.Facets.Tags {
		counts[facet.Value] = facet.Count
	}
	assert.Equal(t, 2, counts["beach"])
	assert.Equal(t, 1, counts["sunset"])
}

func TestSearch_Highlighting(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	require.NoError(t, index.IndexStory(testStory("story-1", "Sunrise hike", "Worth every step.")))

	result, err := index.Search(context.Background(), Params{Query: "sunrise", Limit: 10, Highlight: true})
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Contains(t, result.Hits[0].Highlights["title"], "<mark>")
}

func TestSearch_Pagination(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	stories := []domain.Story{
		testStory("story-1", "Coastal walk one", ""),
		testStory("story-2", "Coastal walk two", ""),
		testStory("story-3", "Coastal walk three", ""),
	}
	require.NoError(t, index.Rebuild(stories))

	first, err := index.Search(context.Background(), Params{Query: "coastal", Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), first.Total)
	assert.Len(t, first.Hits, 2)

	second, err := index.Search(context.Background(), Params{Query: "coastal", Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, second.Hits, 1)
}
