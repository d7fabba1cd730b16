// Package suggest derives writing aids from a story's raw text: a
// title, tags, a mood, an outline, and highlight sentences. All of it
// is cheap local heuristics over word frequency and a couple of
// regular expressions; nothing leaves the machine.
package suggest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
)

// moods the mood guesser can return directly on a keyword hit.
var moods = []string{
	"joyful", "excited", "relaxed", "nostalgic", "adventurous", "romantic",
	"anxious", "tired", "grateful", "curious", "peaceful", "overwhelmed",
}

// travelTags is the fixed vocabulary matched against the text.
var travelTags = []string{
	"beach", "mountain", "hike", "museum", "art", "history", "food", "street food",
	"market", "festival", "road trip", "train", "flight", "airport", "hotel",
	"hostel", "airbnb", "budget", "luxury", "family", "solo", "friends", "adventure",
	"nature", "city", "nightlife", "sunset", "sunrise", "temple", "church", "mosque",
	"park", "waterfall", "lake", "island", "desert", "snow",
}

var stopwords = map[string]bool{
	"the": true, "and": true, "a": true, "an": true, "is": true, "it": true,
	"to": true, "of": true, "in": true, "on": true, "for": true, "with": true,
	"at": true, "as": true, "that": true, "this": true, "was": true, "were": true,
	"be": true, "by": true, "from": true, "or": true, "we": true, "i": true,
	"you": true, "they": true, "he": true, "she": true, "but": true, "so": true,
	"are": true, "my": true, "me": true, "our": true, "their": true,
}

var (
	nonWordRe     = regexp.MustCompile(`[^a-z0-9\s-]`)
	inAtPlaceRe   = regexp.MustCompile(`\b(in|at)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+){0,2})`)
	capitalizedRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})(?:\s+[A-Z][a-zA-Z]{2,})?\b`)
	positiveRe    = regexp.MustCompile(`(?i)(amazing|beautiful|stunning|relax|peace|love|great|enjoy|fun|wow|delicious|perfect|sunny|vibrant)`)
	negativeRe    = regexp.MustCompile(`(?i)(tiring|lost|rain|cold|queue|crowd|expensive|late|delayed|worried|anxious|stress)`)
)

// cleanText collapses whitespace runs and trims the ends.
func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// sentences splits the text after sentence-ending punctuation. Text
// with no terminator at all comes back as a single sentence.
func sentences(text string) []string {
	cleaned := cleanText(text)
	if cleaned == "" {
		return nil
	}

	var out []string
	start := 0
	runes := []rune(cleaned)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			// Split only when whitespace follows, so "U.S." style
			// abbreviations mid-token survive more often than not
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				out = append(out, string(runes[start:i+1]))
				i++
				start = i + 1
			}
		}
	}
	if start < len(runes) {
		out = append(out, strings.TrimSpace(string(runes[start:])))
	}
	if len(out) == 0 {
		return []string{cleaned}
	}
	return out
}

// topWords returns the k most frequent non-stopword tokens, most
// frequent first. Ties rank by first appearance so the output is
// deterministic.
func topWords(text string, k int) []string {
	lowered := nonWordRe.ReplaceAllString(strings.ToLower(cleanText(text)), " ")

	freq := map[string]int{}
	firstSeen := map[string]int{}
	for i, word := range strings.Fields(lowered) {
		if word == "" || stopwords[word] {
			continue
		}
		if _, ok := freq[word]; !ok {
			firstSeen[word] = i
		}
		freq[word]++
	}

	words := make([]string, 0, len(freq))
	for word := range freq {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > k {
		words = words[:k]
	}
	return words
}

// guessLocation looks for "in <Place>" / "at <Place>" first, then falls
// back to the first capitalized token of a plausible length.
func guessLocation(text string) string {
	if m := inAtPlaceRe.FindStringSubmatch(text); m != nil {
		return m[2]
	}
	if m := capitalizedRe.FindString(text); m != "" {
		return m
	}
	return ""
}

// Title proposes a short title for the text, or "" when there is
// nothing to work with.
func Title(text string) string {
	sents := sentences(text)
	if len(sents) == 0 {
		return ""
	}

	// Prefer "<StrongWord> in <Location>" when both are available
	top := topWords(text, 5)
	loc := guessLocation(text)
	if len(top) > 0 && loc != "" {
		word := top[0]
		return strings.ToUpper(word[:1]) + word[1:] + " in " + loc
	}

	// Otherwise a concise snippet from the first sentence
	first := strings.TrimLeft(sents[0], "-–— ")
	if len(first) > 60 {
		first = first[:60]
	}
	return strings.TrimSuffix(first, ".")
}

// Tags proposes up to eight tags: known travel vocabulary found in the
// text, padded with the strongest remaining words.
func Tags(text string) []string {
	known := map[string]bool{}
	for _, tag := range travelTags {
		known[tag] = true
	}

	var matched []string
	for _, tag := range travelTags {
		pattern := `(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(tag), ` `, `\s+`) + `\b`
		if regexp.MustCompile(pattern).MatchString(text) {
			matched = append(matched, tag)
		}
	}

	var extras []string
	for _, word := range topWords(text, 20) {
		if len(word) > 3 && !known[word] {
			extras = append(extras, word)
			if len(extras) == 4 {
				break
			}
		}
	}

	seen := map[string]bool{}
	var all []string
	for _, tag := range append(matched, extras...) {
		if !seen[tag] {
			seen[tag] = true
			all = append(all, tag)
		}
	}
	if len(all) > 8 {
		all = all[:8]
	}
	return all
}

// Mood guesses a mood: a direct mood keyword wins, then a light
// sentiment check, then "curious" as the neutral fallback.
func Mood(text string) string {
	lowered := strings.ToLower(text)
	for _, mood := range moods {
		if strings.Contains(lowered, mood) {
			return mood
		}
	}

	pos := positiveRe.MatchString(text)
	neg := negativeRe.MatchString(text)
	switch {
	case pos && !neg:
		return "joyful"
	case neg && !pos:
		return "overwhelmed"
	default:
		return "curious"
	}
}

// Outline proposes up to five bullet points scaffolding the story.
func Outline(text string) []string {
	sents := sentences(text)
	if len(sents) == 0 {
		return nil
	}

	where := guessLocation(text)
	if where == "" {
		where = "somewhere"
	}

	bullets := []string{
		fmt.Sprintf("Where/When: %s, %s", where, time.Now().Format("Jan 2, 2006")),
	}
	if kws := topWords(text, 5); len(kws) > 0 {
		if len(kws) > 3 {
			kws = kws[:3]
		}
		bullets = append(bullets, "Highlights: "+strings.Join(kws, ", "))
	}
	bullets = append(bullets, "What happened: "+sents[0])
	if len(sents) > 1 {
		bullets = append(bullets, "Why it mattered: "+sents[1])
	}
	bullets = append(bullets, "Tip for others: ")

	if len(bullets) > 5 {
		bullets = bullets[:5]
	}
	return bullets
}

// Highlights picks the one or two longest sentences, capped at 140
// characters each.
func Highlights(text string) []string {
	sents := sentences(text)
	if len(sents) == 0 {
		return nil
	}

	ranked := make([]string, len(sents))
	copy(ranked, sents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i]) > len(ranked[j])
	})

	if len(ranked) > 2 {
		ranked = ranked[:2]
	}
	for i, s := range ranked {
		if runes := []rune(s); len(runes) > 140 {
			ranked[i] = string(runes[:140])
		}
	}
	return ranked
}

// Location exposes the location guess on its own, "" when none.
func Location(text string) string {
	return guessLocation(text)
}
