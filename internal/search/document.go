// Package search provides full-text search over the journal using
// Bleve. Stories are searchable by their text, filterable by tag, mood,
// and visibility, and sortable by recency.
package search

import (
	"github.com/trailbookapp/trailbook/internal/domain"
)

// StoryDocument is the indexed shape of a story. Text fields carry the
// searchable prose; tags and visibility are keyword fields for exact
// filtering.
type StoryDocument struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Mood       string   `json:"mood,omitempty"`
	Location   string   `json:"location,omitempty"`
	Author     string   `json:"author,omitempty"`
	Visibility string   `json:"visibility"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  int64    `json:"created_at"` // Unix millis
	UpdatedAt  int64    `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve would otherwise index Go struct field names (capitalized), and
// the index mapping uses lowercase names.
func (d *StoryDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"title":      d.Title,
		"body":       d.Body,
		"visibility": d.Visibility,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.Mood != "" {
		m["mood"] = d.Mood
	}
	if d.Location != "" {
		m["location"] = d.Location
	}
	if d.Author != "" {
		m["author"] = d.Author
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}

	return m
}

// StoryToDocument converts a domain Story to its indexed shape.
func StoryToDocument(story domain.Story) *StoryDocument {
	doc := &StoryDocument{
		ID:         story.ID,
		Title:      story.Title,
		Body:       story.Body,
		Visibility: string(story.Visibility),
		Tags:       story.Tags,
		CreatedAt:  story.CreatedAt.UnixMilli(),
		UpdatedAt:  story.UpdatedAt.UnixMilli(),
	}

	if story.Mood != nil {
		doc.Mood = *story.Mood
	}
	if story.Location != nil {
		doc.Location = *story.Location
	}
	if story.Author != nil {
		doc.Author = *story.Author
	}

	return doc
}
