package domain

// Theme selects the UI color scheme.
type Theme string

// Supported themes.
const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Preferences is the single user-preferences record: defaults applied to
// new stories plus display identity. It is never deleted, only merged
// over or reset to defaults.
type Preferences struct {
	DefaultVisibility    Visibility `json:"defaultVisibility"`
	DefaultAllowComments bool       `json:"defaultAllowComments"`
	DefaultAllowLikes    bool       `json:"defaultAllowLikes"`
	DefaultShareLocation bool       `json:"defaultShareLocation"`
	DisplayName          string     `json:"displayName"`
	Theme                Theme      `json:"theme"`
}

// DefaultPreferences returns the initial preferences record.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultVisibility: VisibilityPrivate,
		DisplayName:       "",
		Theme:             ThemeSystem,
	}
}

// PreferencesPatch is a partial preferences update. Nil fields are left
// untouched by Merge.
type PreferencesPatch struct {
	DefaultVisibility    *Visibility `json:"defaultVisibility,omitempty"`
	DefaultAllowComments *bool       `json:"defaultAllowComments,omitempty"`
	DefaultAllowLikes    *bool       `json:"defaultAllowLikes,omitempty"`
	DefaultShareLocation *bool       `json:"defaultShareLocation,omitempty"`
	DisplayName          *string     `json:"displayName,omitempty"`
	Theme                *Theme      `json:"theme,omitempty"`
}

// Merge applies a shallow patch and returns the merged record.
func (p Preferences) Merge(patch PreferencesPatch) Preferences {
	if patch.DefaultVisibility != nil {
		p.DefaultVisibility = *patch.DefaultVisibility
	}
	if patch.DefaultAllowComments != nil {
		p.DefaultAllowComments = *patch.DefaultAllowComments
	}
	if patch.DefaultAllowLikes != nil {
		p.DefaultAllowLikes = *patch.DefaultAllowLikes
	}
	if patch.DefaultShareLocation != nil {
		p.DefaultShareLocation = *patch.DefaultShareLocation
	}
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	return p
}
