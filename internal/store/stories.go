package store

import (
	"slices"
	"sort"
	"time"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/id"
	"github.com/trailbookapp/trailbook/internal/normalize"
)

// StoryPatch is a partial story update. Nil fields are left untouched.
// For the nullable classifiers (template, mood, location) a pointer to
// the empty string clears the field.
type StoryPatch struct {
	Title    *string
	Body     *string
	Template *string
	Mood     *string
	Location *string

	Visibility    *domain.Visibility
	AllowComments *bool
	AllowLikes    *bool
	IsAnonymous   *bool

	// Tags and Images accept the same shapes as normalization does:
	// a comma-separated string or a sequence.
	Tags   any
	Images any
}

// AddStory normalizes the draft into a new story and inserts it at the
// front of the collection (the store's canonical most-recent-first
// order). Visibility and the comment/like flags default from the
// current preferences when absent; the author is a creation-time
// snapshot, nil for anonymous stories. Returns the new story's ID.
func (s *Store) AddStory(draft normalize.Raw) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	draft.ID = id.MustGenerate("story")
	draft.CreatedAt = ""
	draft.UpdatedAt = ""

	if draft.Visibility == "" {
		draft.Visibility = string(s.prefs.DefaultVisibility)
	}
	if draft.AllowComments == nil {
		allow := s.prefs.DefaultAllowComments
		draft.AllowComments = &allow
	}
	if draft.AllowLikes == nil {
		allow := s.prefs.DefaultAllowLikes
		draft.AllowLikes = &allow
	}

	// Author snapshot: nil when anonymous (the default), otherwise the
	// current display name with a literal fallback.
	if draft.IsAnonymous == nil || *draft.IsAnonymous {
		draft.Author = nil
	} else {
		name := s.prefs.DisplayName
		if name == "" {
			name = "Anonymous"
		}
		draft.Author = &name
	}

	story := normalize.StoryAt(draft, now)

	s.stories = append([]domain.Story{story}, s.stories...)
	s.persistStateLocked()
	s.emit(StoryCreatedEvent{Story: story})
	s.index(story)

	return story.ID
}

// UpdateStory shallow-merges the patch onto the story and re-normalizes
// the result in full, so a patch touching tags or images re-validates
// them. A missing ID is a no-op. Returns whether the story was found.
func (s *Store) UpdateStory(storyID string, patch StoryPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return false
	}

	now := time.Now().UTC()

	next := applyPatch(s.stories[i], patch)
	next = normalize.Clean(next, now)
	next.UpdatedAt = now
	s.stories[i] = next

	s.persistStateLocked()
	s.emit(StoryUpdatedEvent{Story: next})
	s.index(next)

	return true
}

// RemoveStory deletes the story by ID. A missing ID is a no-op that
// still re-persists the unchanged snapshot.
func (s *Store) RemoveStory(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i >= 0 {
		s.stories = append(s.stories[:i], s.stories[i+1:]...)
	}

	s.persistStateLocked()

	if i >= 0 {
		s.emit(StoryDeletedEvent{StoryID: storyID})
		s.unindex(storyID)
	}
	return i >= 0
}

// ToggleLike flips the story's local liked flag and steps the like
// counter in the same direction. Missing ID is a no-op.
func (s *Store) ToggleLike(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return false
	}

	s.stories[i].ToggleLike(time.Now().UTC())
	s.persistStateLocked()
	s.emit(StoryUpdatedEvent{Story: s.stories[i]})
	s.index(s.stories[i])
	return true
}

// AddComment appends a comment with the current timestamp. The text is
// stored verbatim; trimming and empty checks are the caller's concern.
// Missing ID is a no-op.
func (s *Store) AddComment(storyID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return false
	}

	s.stories[i].AddComment(text, time.Now().UTC())
	s.persistStateLocked()
	s.emit(StoryUpdatedEvent{Story: s.stories[i]})
	s.index(s.stories[i])
	return true
}

// SetStoryImages replaces the story's image list with the normalized
// input. Missing ID is a no-op.
func (s *Store) SetStoryImages(storyID string, images any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return false
	}

	s.stories[i].SetImages(normalize.Images(images), time.Now().UTC())
	s.persistStateLocked()
	s.emit(StoryUpdatedEvent{Story: s.stories[i]})
	s.index(s.stories[i])
	return true
}

// AppendStoryImages merges additional images into the story's list,
// dropping exact duplicates. Missing ID is a no-op.
func (s *Store) AppendStoryImages(storyID string, images any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return false
	}

	s.stories[i].AppendImages(normalize.Images(images), time.Now().UTC())
	s.persistStateLocked()
	s.emit(StoryUpdatedEvent{Story: s.stories[i]})
	s.index(s.stories[i])
	return true
}

// RemoveStoryImage deletes the image at the given index. The return
// value reports whether the story exists; an out-of-bounds index on an
// existing story is a silent no-op and still returns true.
func (s *Store) RemoveStoryImage(storyID string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return false
	}

	if !s.stories[i].RemoveImageAt(index, time.Now().UTC()) {
		return true
	}

	s.persistStateLocked()
	s.emit(StoryUpdatedEvent{Story: s.stories[i]})
	s.index(s.stories[i])
	return true
}

// Stories returns a copy of the story collection in canonical
// most-recent-first order.
func (s *Store) Stories() []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.stories)
}

// Story returns the story with the given ID.
func (s *Store) Story(storyID string) (domain.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findLocked(storyID)
	if i < 0 {
		return domain.Story{}, false
	}
	return s.stories[i], true
}

// AllTags returns the distinct tags across all stories, sorted
// alphabetically. This ordering is part of the contract, unlike the
// first-seen order used inside a single story.
func (s *Store) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, story := range s.stories {
		for _, tag := range story.Tags {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// findLocked returns the index of the story with the given ID, or -1.
// Caller must hold mu.
func (s *Store) findLocked(storyID string) int {
	for i := range s.stories {
		if s.stories[i].ID == storyID {
			return i
		}
	}
	return -1
}

// applyPatch shallow-merges a patch onto a story.
func applyPatch(story domain.Story, patch StoryPatch) domain.Story {
	if patch.Title != nil {
		story.Title = *patch.Title
	}
	if patch.Body != nil {
		story.Body = *patch.Body
	}
	if patch.Template != nil {
		story.Template = optional(*patch.Template)
	}
	if patch.Mood != nil {
		story.Mood = optional(*patch.Mood)
	}
	if patch.Location != nil {
		story.Location = optional(*patch.Location)
	}
	if patch.Visibility != nil {
		story.Visibility = *patch.Visibility
	}
	if patch.AllowComments != nil {
		story.AllowComments = *patch.AllowComments
	}
	if patch.AllowLikes != nil {
		story.AllowLikes = *patch.AllowLikes
	}
	if patch.IsAnonymous != nil {
		story.IsAnonymous = *patch.IsAnonymous
	}
	if patch.Tags != nil {
		story.Tags = normalize.Tags(patch.Tags)
	}
	if patch.Images != nil {
		story.Images = normalize.Images(patch.Images)
	}
	return story
}

// optional maps the empty string to nil for nullable classifiers.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
