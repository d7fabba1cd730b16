// Package export renders single stories into shareable files, as JSON
// for machine use and plain text for reading.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/util"
)

// Source identifies exports produced by this app.
const Source = "Trailbook (local)"

// timeLayout is the human-readable timestamp used in text exports.
const timeLayout = "Jan 2, 2006 15:04"

// StoryJSON is the single-story export payload.
type StoryJSON struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Mood        *string          `json:"mood"`
	Location    *string          `json:"location"`
	Visibility  string           `json:"visibility"`
	IsAnonymous bool             `json:"isAnonymous"`
	DisplayName *string          `json:"displayName"`
	Likes       int              `json:"likes"`
	Comments    []domain.Comment `json:"comments"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	ExportedAt  time.Time        `json:"exportedAt"`
	Source      string           `json:"source"`
}

// byline returns the display name to attribute, or nil. Attribution
// only appears on public, non-anonymous stories.
func byline(story domain.Story, displayName string) *string {
	if story.Visibility == domain.VisibilityPublic && !story.IsAnonymous && displayName != "" {
		return &displayName
	}
	return nil
}

// StoryPayload builds the JSON export payload for one story.
func StoryPayload(story domain.Story, displayName string) StoryJSON {
	comments := story.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}

	updatedAt := story.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = story.CreatedAt
	}

	return StoryJSON{
		ID:          story.ID,
		Title:       story.Title,
		Body:        story.Body,
		Mood:        story.Mood,
		Location:    story.Location,
		Visibility:  string(story.Visibility),
		IsAnonymous: story.IsAnonymous,
		DisplayName: byline(story, displayName),
		Likes:       story.Likes,
		Comments:    comments,
		CreatedAt:   story.CreatedAt,
		UpdatedAt:   updatedAt,
		ExportedAt:  time.Now().UTC(),
		Source:      Source,
	}
}

// RenderText renders one story as a plain-text document: title, a
// metadata line, the body, and a trailing comments block when there are
// comments.
func RenderText(story domain.Story, displayName string) string {
	title := story.Title
	if title == "" {
		title = "(untitled)"
	}

	metaBits := []string{
		story.CreatedAt.Format(timeLayout),
		string(story.Visibility),
		orDash(story.Mood),
		orDash(story.Location),
	}
	if name := byline(story, displayName); name != nil {
		metaBits = append(metaBits, "By "+*name)
	}

	lines := []string{
		title,
		strings.Join(metaBits, " • "),
		"",
		story.Body,
	}

	if len(story.Comments) > 0 {
		lines = append(lines, "", "--- Comments ---")
		for _, c := range story.Comments {
			lines = append(lines, fmt.Sprintf("[%s] %s", c.Date.Format(timeLayout), c.Text))
		}
	}

	return strings.Join(lines, "\n")
}

// orDash substitutes a placeholder for absent optional fields.
func orDash(value *string) string {
	if value == nil || *value == "" {
		return "—"
	}
	return *value
}

// WriteJSON writes the story's JSON export into dir and returns the
// file path.
func WriteJSON(dir string, story domain.Story, displayName string) (string, error) {
	data, err := json.MarshalIndent(StoryPayload(story, displayName), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal story export: %w", err)
	}

	path := filepath.Join(dir, util.FileSlug(story.Title)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write story export: %w", err)
	}
	return path, nil
}

// WriteText writes the story's plain-text export into dir and returns
// the file path.
func WriteText(dir string, story domain.Story, displayName string) (string, error) {
	path := filepath.Join(dir, util.FileSlug(story.Title)+".txt")
	if err := os.WriteFile(path, []byte(RenderText(story, displayName)), 0644); err != nil {
		return "", fmt.Errorf("write story export: %w", err)
	}
	return path, nil
}

// WriteBundle writes a full journal backup into the given path.
func WriteBundle(path string, bundle domain.Bundle) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}
