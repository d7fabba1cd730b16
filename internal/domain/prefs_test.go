package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, VisibilityPrivate, prefs.DefaultVisibility)
	assert.False(t, prefs.DefaultAllowComments)
	assert.False(t, prefs.DefaultAllowLikes)
	assert.False(t, prefs.DefaultShareLocation)
	assert.Equal(t, "", prefs.DisplayName)
	assert.Equal(t, ThemeSystem, prefs.Theme)
}

func TestPreferences_Merge_PartialPatch(t *testing.T) {
	prefs := DefaultPreferences()
	name := "Ada"
	vis := VisibilityPublic

	merged := prefs.Merge(PreferencesPatch{
		DisplayName:       &name,
		DefaultVisibility: &vis,
	})

	assert.Equal(t, "Ada", merged.DisplayName)
	assert.Equal(t, VisibilityPublic, merged.DefaultVisibility)
	// Untouched fields keep their values.
	assert.Equal(t, ThemeSystem, merged.Theme)
	assert.False(t, merged.DefaultAllowComments)
}

func TestPreferences_Merge_EmptyPatchIsIdentity(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.DisplayName = "Ada"

	merged := prefs.Merge(PreferencesPatch{})

	assert.Equal(t, prefs, merged)
}

func TestPreferences_Merge_CanSetEmptyName(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.DisplayName = "Ada"
	empty := ""

	merged := prefs.Merge(PreferencesPatch{DisplayName: &empty})

	assert.Equal(t, "", merged.DisplayName)
}
