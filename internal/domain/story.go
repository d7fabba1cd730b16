// Package domain contains the core journal types: stories, preferences,
// bookmarks, and sessions.
package domain

import "time"

// Visibility controls who can discover a story.
type Visibility string

// Visibility tiers. "friends" is a label only - there is no audience
// resolution behind it.
const (
	VisibilityPrivate Visibility = "private"
	VisibilityFriends Visibility = "friends"
	VisibilityPublic  Visibility = "public"
)

// Valid checks if the visibility is one of the three known tiers.
// Normalization deliberately does not enforce this - unknown values are
// stored as-is and simply never match the public/friends filters.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityFriends, VisibilityPublic:
		return true
	default:
		return false
	}
}

// Comment is a single comment on a story. Comments are append-only;
// there is no edit or delete operation.
type Comment struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Story is one journal entry. Every Story held by the store has passed
// normalization: Tags and Images are trimmed/deduplicated, the ID and
// timestamps are always present, and booleans are always set.
//
// JSON field names follow the persisted state format (camelCase), which
// is also the seed and export wire format.
type Story struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Template *string `json:"template"`
	Mood     *string `json:"mood"`
	Location *string `json:"location"`

	Visibility    Visibility `json:"visibility"`
	AllowComments bool       `json:"allowComments"`
	AllowLikes    bool       `json:"allowLikes"`
	IsAnonymous   bool       `json:"isAnonymous"`

	// Tags are lowercase, trimmed, first-seen order.
	Tags []string `json:"tags"`
	// Images are opaque string references (data URIs in practice),
	// deduplicated by exact value, first-seen order.
	Images []string `json:"images"`

	Likes    int       `json:"likes"`
	Liked    bool      `json:"liked"`
	Comments []Comment `json:"comments"`

	// Author is a display-name snapshot taken at creation time, nil when
	// the story is anonymous. It is never recomputed afterwards.
	Author *string `json:"author"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch refreshes the modification timestamp.
func (s *Story) Touch(now time.Time) {
	s.UpdatedAt = now
}

// ToggleLike flips the local liked flag and moves the like counter one
// step in the same direction. Like and unlike are always paired, so the
// counter returns to its origin after a double toggle.
func (s *Story) ToggleLike(now time.Time) {
	if s.Liked {
		s.Likes--
	} else {
		s.Likes++
	}
	s.Liked = !s.Liked
	s.UpdatedAt = now
}

// AddComment appends a comment with the given timestamp. The text is
// stored verbatim; callers decide about trimming and empty checks.
func (s *Story) AddComment(text string, now time.Time) {
	s.Comments = append(s.Comments, Comment{Text: text, Date: now})
	s.UpdatedAt = now
}

// SetImages replaces the image list. The caller provides an already
// normalized list.
func (s *Story) SetImages(images []string, now time.Time) {
	s.Images = images
	s.UpdatedAt = now
}

// AppendImages merges additional image references into the existing
// list, dropping exact duplicates and preserving first-seen order.
func (s *Story) AppendImages(images []string, now time.Time) {
	seen := make(map[string]bool, len(s.Images)+len(images))
	merged := make([]string, 0, len(s.Images)+len(images))
	for _, img := range s.Images {
		if !seen[img] {
			seen[img] = true
			merged = append(merged, img)
		}
	}
	for _, img := range images {
		if !seen[img] {
			seen[img] = true
			merged = append(merged, img)
		}
	}
	s.Images = merged
	s.UpdatedAt = now
}

// RemoveImageAt deletes the image at the given index. Out-of-bounds
// indexes are a no-op; no error is raised.
func (s *Story) RemoveImageAt(index int, now time.Time) bool {
	if index < 0 || index >= len(s.Images) {
		return false
	}
	s.Images = append(s.Images[:index], s.Images[index+1:]...)
	s.UpdatedAt = now
	return true
}
