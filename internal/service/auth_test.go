package service

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailbookapp/trailbook/internal/store"
)

func setupAuthService(t *testing.T) (*AuthService, *store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "trailbook-auth-test-*")
	require.NoError(t, err)

	st, err := store.New(filepath.Join(tmpDir, "journal"), nil, store.NewNoopEmitter())
	require.NoError(t, err)

	svc := NewAuthService(st, slog.New(slog.DiscardHandler))

	cleanup := func() {
		st.Close()
		os.RemoveAll(tmpDir)
	}
	return svc, st, cleanup
}

func TestLogin(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	session, err := svc.Login(LoginRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.True(t, svc.IsAuthed())
}

func TestLogin_InvalidEmail(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Login(LoginRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.False(t, svc.IsAuthed())

	_, err = svc.Login(LoginRequest{})
	assert.Error(t, err)
}

func TestLogin_RememberPersists(t *testing.T) {
	svc, st, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Login(LoginRequest{Email: "ada@example.com", Remember: true})
	require.NoError(t, err)

	session, ok := st.Session()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", session.Email)
}

func TestLogin_NoRememberIsEphemeral(t *testing.T) {
	svc, st, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Login(LoginRequest{Email: "ada@example.com"})
	require.NoError(t, err)

	_, ok := st.Session()
	assert.False(t, ok)
}

func TestLogin_KeepsDisplayName(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Signup(SignupRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	// Signing in again keeps the name from the live session
	session, err := svc.Login(LoginRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.DisplayName)
}

func TestSignup(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	session, err := svc.Signup(SignupRequest{Name: "Ada", Email: "ada@example.com", Remember: true})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.DisplayName)
	assert.True(t, svc.IsAuthed())
}

func TestLogout(t *testing.T) {
	svc, st, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Login(LoginRequest{Email: "ada@example.com", Remember: true})
	require.NoError(t, err)

	svc.Logout()
	assert.False(t, svc.IsAuthed())

	_, ok := st.Session()
	assert.False(t, ok)
}

func TestSetDisplayName(t *testing.T) {
	svc, st, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Login(LoginRequest{Email: "ada@example.com"})
	require.NoError(t, err)

	session, err := svc.SetDisplayName("Countess")
	require.NoError(t, err)
	assert.Equal(t, "Countess", session.DisplayName)

	// Name changes always persist
	saved, ok := st.Session()
	require.True(t, ok)
	assert.Equal(t, "Countess", saved.DisplayName)
}

func TestSetDisplayName_RequiresSession(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.SetDisplayName("Nobody")
	assert.Error(t, err)
}

func TestNewAuthService_RestoresRememberedSession(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "trailbook-auth-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "journal")

	st, err := store.New(dbPath, nil, store.NewNoopEmitter())
	require.NoError(t, err)
	svc := NewAuthService(st, slog.New(slog.DiscardHandler))
	_, err = svc.Login(LoginRequest{Email: "ada@example.com", Remember: true})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = store.New(dbPath, nil, store.NewNoopEmitter())
	require.NoError(t, err)
	defer st.Close()

	restored := NewAuthService(st, slog.New(slog.DiscardHandler))
	session, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", session.Email)
}
