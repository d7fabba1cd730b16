package domain

// Session is the local login stub: an email and a display name. No
// credential ever gets verified; the session exists so the UI can show
// who is "signed in" on this device.
type Session struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
