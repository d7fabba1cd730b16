// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
)

var (
	// Matches runs of anything that is not a lowercase letter or digit.
	nonAlphanumericRunRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// FileSlug converts a story title into a safe export filename stem.
//
// Normalization rules:
//  1. Lowercase
//  2. Replace runs of non-alphanumeric characters with dashes
//  3. Trim leading/trailing dashes
//  4. Cap at 60 characters
//  5. Fall back to "story" when nothing survives
//
// Examples:
//
//	"Sunrise over the Dolomites" → "sunrise-over-the-dolomites"
//	"  Day 3: rain!!  "          → "day-3-rain"
//	""                           → "story"
func FileSlug(title string) string {
	s := strings.ToLower(title)
	s = nonAlphanumericRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 60 {
		s = strings.Trim(s[:60], "-")
	}
	if s == "" {
		return "story"
	}
	return s
}
