// Package normalize coerces arbitrary, partial, or malformed story input
// into well-formed domain records. Every function here is total: bad
// input is defaulted, never rejected, so stories survive format drift in
// the persisted state.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/id"
)

// Raw is the loose input shape for a story. Flexible fields accept
// whatever JSON (or caller) provides: Tags may be a comma-separated
// string or a sequence, Images a single value or a sequence, Likes any
// numeric shape, Comments any JSON value.
type Raw struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Template *string `json:"template"`
	Mood     *string `json:"mood"`
	Location *string `json:"location"`

	Visibility    string `json:"visibility"`
	AllowComments *bool  `json:"allowComments"`
	AllowLikes    *bool  `json:"allowLikes"`
	IsAnonymous   *bool  `json:"isAnonymous"`

	Tags   any `json:"tags"`
	Images any `json:"images"`

	Likes    any             `json:"likes"`
	Liked    bool            `json:"liked"`
	Comments json.RawMessage `json:"comments"`

	Author *string `json:"author"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Tags normalizes tag input: a comma-separated string or a sequence of
// values. Each element is trimmed, lowercased, empties are dropped, and
// duplicates are removed preserving first-seen order.
func Tags(input any) []string {
	parts := splitValues(input, true)

	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Images normalizes image input: a single value or a sequence. Entries
// are stringified, trimmed, empties dropped, and duplicates removed by
// exact value preserving first-seen order.
func Images(input any) []string {
	parts := splitValues(input, false)

	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// splitValues turns the accepted input shapes into a flat string slice.
// Strings are comma-split when splitString is set (tags), otherwise
// treated as a single value (images).
func splitValues(input any, splitString bool) []string {
	switch v := input.(type) {
	case nil:
		return nil
	case string:
		if splitString {
			return strings.Split(v, ",")
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if e == nil {
				continue
			}
			out = append(out, stringify(e))
		}
		return out
	default:
		return []string{stringify(v)}
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Story normalizes raw input into a well-formed story, defaulting every
// missing or malformed field. It never fails.
func Story(raw Raw) domain.Story {
	return StoryAt(raw, time.Now().UTC())
}

// StoryAt is Story with an explicit clock, used by the store and tests.
//
// The function is idempotent: feeding a normalized story back through
// produces an observably equal story.
func StoryAt(raw Raw, now time.Time) domain.Story {
	storyID := raw.ID
	if storyID == "" {
		storyID = id.MustGenerate("story")
	}

	visibility := domain.Visibility(raw.Visibility)
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	createdAt := parseTime(raw.CreatedAt, now)
	updatedAt := parseTime(raw.UpdatedAt, createdAt)

	return domain.Story{
		ID:            storyID,
		Title:         strings.TrimSpace(raw.Title),
		Body:          strings.TrimSpace(raw.Body),
		Template:      raw.Template,
		Mood:          raw.Mood,
		Location:      raw.Location,
		Visibility:    visibility,
		AllowComments: boolOr(raw.AllowComments, false),
		AllowLikes:    boolOr(raw.AllowLikes, false),
		IsAnonymous:   boolOr(raw.IsAnonymous, true),
		Tags:          Tags(raw.Tags),
		Images:        Images(raw.Images),
		Likes:         finiteInt(raw.Likes),
		Liked:         raw.Liked,
		Comments:      commentList(raw.Comments),
		Author:        raw.Author,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// Clean re-normalizes an already-typed story, applying the same rules
// as StoryAt to the fields that can drift (tags, images, trims, missing
// id or timestamps). Used when merging patches onto an existing story.
func Clean(s domain.Story, now time.Time) domain.Story {
	if s.ID == "" {
		s.ID = id.MustGenerate("story")
	}
	s.Title = strings.TrimSpace(s.Title)
	s.Body = strings.TrimSpace(s.Body)
	if s.Visibility == "" {
		s.Visibility = domain.VisibilityPrivate
	}
	s.Tags = Tags(s.Tags)
	s.Images = Images(s.Images)
	if s.Comments == nil {
		s.Comments = []domain.Comment{}
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = s.CreatedAt
	}
	return s
}

// Stories migrates a possibly-malformed persisted sequence into
// normalized stories. Non-sequence or undecodable input yields an empty
// slice; migration fails soft, never with an error.
func Stories(raw json.RawMessage) []domain.Story {
	if len(raw) == 0 {
		return []domain.Story{}
	}

	var rawStories []Raw
	if err := json.Unmarshal(raw, &rawStories); err != nil {
		return []domain.Story{}
	}

	now := time.Now().UTC()
	out := make([]domain.Story, 0, len(rawStories))
	for _, r := range rawStories {
		out = append(out, StoryAt(r, now))
	}
	return out
}

// parseTime parses an RFC 3339 timestamp, falling back when the value
// is missing or malformed.
func parseTime(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fallback
	}
	return t
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// finiteInt extracts a finite numeric like count, else 0.
func finiteInt(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}

// commentList decodes the comments field if it is a sequence of
// comments, else returns an empty list. Individual comments are not
// normalized further.
func commentList(raw json.RawMessage) []domain.Comment {
	if len(raw) == 0 {
		return []domain.Comment{}
	}
	var comments []domain.Comment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return []domain.Comment{}
	}
	if comments == nil {
		return []domain.Comment{}
	}
	return comments
}
