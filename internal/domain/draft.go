package domain

import "time"

// Draft is an autosaved, in-progress story form. Drafts are keyed
// separately from the committed story collection: one slot for the
// composer plus one per in-flight edit.
type Draft struct {
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Template      *string    `json:"template"`
	Mood          *string    `json:"mood"`
	Location      *string    `json:"location"`
	Visibility    Visibility `json:"visibility"`
	AllowComments bool       `json:"allowComments"`
	AllowLikes    bool       `json:"allowLikes"`
	IsAnonymous   bool       `json:"isAnonymous"`
	Tags          []string   `json:"tags"`
	Images        []string   `json:"images"`

	SavedAt time.Time `json:"__savedAt"`
}
