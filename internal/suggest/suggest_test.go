package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEntry = "We spent the morning in Lisbon wandering the old town. " +
	"The street food at the market was delicious. " +
	"Sunset from the castle walls was stunning."

func TestSentences(t *testing.T) {
	sents := sentences("First one. Second one! Third?")
	require.Len(t, sents, 3)
	assert.Equal(t, "First one.", sents[0])
	assert.Equal(t, "Second one!", sents[1])
	assert.Equal(t, "Third?", sents[2])
}

func TestSentences_NoTerminator(t *testing.T) {
	sents := sentences("just a fragment without punctuation")
	require.Len(t, sents, 1)
	assert.Equal(t, "just a fragment without punctuation", sents[0])
}

func TestSentences_Empty(t *testing.T) {
	assert.Empty(t, sentences(""))
	assert.Empty(t, sentences("   \n\t  "))
}

func TestTopWords_StopwordsAndOrder(t *testing.T) {
	words := topWords("the beach the beach the waves", 8)
	require.NotEmpty(t, words)
	assert.Equal(t, "beach", words[0])
	assert.NotContains(t, words, "the")
}

func TestGuessLocation_InPattern(t *testing.T) {
	assert.Equal(t, "Lisbon", guessLocation("We spent the morning in Lisbon wandering"))
	assert.Equal(t, "New York City", guessLocation("Three days at New York City before the flight"))
}

func TestGuessLocation_CapitalizedFallback(t *testing.T) {
	assert.Equal(t, "Kyoto", guessLocation("the Kyoto gardens were quiet"))
	assert.Equal(t, "", guessLocation("no places here at all"))
}

func TestTitle(t *testing.T) {
	title := Title(sampleEntry)
	require.NotEmpty(t, title)
	// Location was found, so the title takes the "<Word> in <Place>" form
	assert.Contains(t, title, " in Lisbon")
	// Leading keyword is capitalized
	assert.Equal(t, strings.ToUpper(title[:1]), title[:1])
}

func TestTitle_SnippetFallback(t *testing.T) {
	title := Title("woke up late. nothing else to report.")
	assert.Equal(t, "woke up late", title)
}

func TestTitle_Empty(t *testing.T) {
	assert.Equal(t, "", Title(""))
}

func TestTags(t *testing.T) {
	tags := Tags(sampleEntry)
	require.NotEmpty(t, tags)
	assert.Contains(t, tags, "street food")
	assert.Contains(t, tags, "sunset")
	assert.Contains(t, tags, "market")
	assert.LessOrEqual(t, len(tags), 8)
}

func TestTags_MultiWordVocabulary(t *testing.T) {
	tags := Tags("An epic road   trip across the desert")
	assert.Contains(t, tags, "road trip")
	assert.Contains(t, tags, "desert")
}

func TestMood_DirectKeyword(t *testing.T) {
	assert.Equal(t, "nostalgic", Mood("Feeling nostalgic about the old house"))
}

func TestMood_Sentiment(t *testing.T) {
	assert.Equal(t, "joyful", Mood("The view was stunning and the food delicious"))
	assert.Equal(t, "overwhelmed", Mood("Cold rain, endless queue, totally lost"))
	assert.Equal(t, "curious", Mood("We took the tram to the depot"))
	// Mixed signals stay neutral
	assert.Equal(t, "curious", Mood("A stunning view after hours of cold rain"))
}

func TestOutline(t *testing.T) {
	outline := Outline(sampleEntry)
	require.NotEmpty(t, outline)
	assert.LessOrEqual(t, len(outline), 5)
	assert.True(t, strings.HasPrefix(outline[0], "Where/When: Lisbon"))

	var hasWhat bool
	for _, bullet := range outline {
		if strings.HasPrefix(bullet, "What happened: ") {
			hasWhat = true
		}
	}
	assert.True(t, hasWhat)
}

func TestOutline_Empty(t *testing.T) {
	assert.Empty(t, Outline(""))
}

func TestHighlights(t *testing.T) {
	highlights := Highlights(sampleEntry)
	require.Len(t, highlights, 2)
	// Longest sentences win
	assert.GreaterOrEqual(t, len(highlights[0]), len(highlights[1]))
	for _, h := range highlights {
		assert.LessOrEqual(t, len([]rune(h)), 140)
	}
}

func TestHighlights_SingleSentence(t *testing.T) {
	highlights := Highlights("Just the one thing happened today.")
	require.Len(t, highlights, 1)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Lisbon", Location(sampleEntry))
	assert.Equal(t, "", Location("lowercase only here"))
}
