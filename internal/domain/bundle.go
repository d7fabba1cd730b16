package domain

import "time"

// BundleVersion is the current full-store export format version.
const BundleVersion = 1

// Bundle is the full-store export/import shape. It doubles as the seed
// dataset format consumed on first run.
type Bundle struct {
	Version    int         `json:"version"`
	Stories    []Story     `json:"stories"`
	Prefs      Preferences `json:"prefs"`
	Bookmarks  Bookmarks   `json:"bookmarks"`
	ExportedAt time.Time   `json:"exportedAt"`
}
