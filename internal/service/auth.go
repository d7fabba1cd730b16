// Package service holds the application services layered on top of the
// store.
package service

import (
	"errors"
	"log/slog"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/trailbookapp/trailbook/internal/domain"
	domainerrors "github.com/trailbookapp/trailbook/internal/errors"
	"github.com/trailbookapp/trailbook/internal/store"
)

// validate is a shared validator instance for request validation.
var validate = func() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for field names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove any options (like omitempty, -)
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})
	return v
}()

// AuthService is the local sign-in stub. There is no password and no
// remote identity provider; "signing in" records who is writing the
// journal so stories can carry an author name. The session survives
// restarts only when the caller asks to be remembered.
type AuthService struct {
	store  *store.Store
	logger *slog.Logger

	mu      sync.RWMutex
	session *domain.Session
}

// NewAuthService creates the auth service, restoring any remembered
// session from the store.
func NewAuthService(st *store.Store, logger *slog.Logger) *AuthService {
	s := &AuthService{
		store:  st,
		logger: logger,
	}
	if session, ok := st.Session(); ok {
		s.session = &session
		logger.Debug("restored remembered session", "email", session.Email)
	}
	return s
}

// LoginRequest contains the sign-in fields.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Remember bool   `json:"remember"`
}

// SignupRequest contains the account-creation fields.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Remember bool   `json:"remember"`
}

// Login signs in with an email address. An existing display name is
// kept so logging out and back in does not lose it.
func (s *AuthService) Login(req LoginRequest) (domain.Session, error) {
	if err := validate.Struct(req); err != nil {
		return domain.Session{}, formatValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	displayName := ""
	if s.session != nil {
		displayName = s.session.DisplayName
	}
	session := domain.Session{Email: req.Email, DisplayName: displayName}
	s.session = &session

	if req.Remember {
		s.store.SaveSession(session)
	}

	s.logger.Info("signed in", "email", req.Email, "remembered", req.Remember)
	return session, nil
}

// Signup creates the local account and signs in.
func (s *AuthService) Signup(req SignupRequest) (domain.Session, error) {
	if err := validate.Struct(req); err != nil {
		return domain.Session{}, formatValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.Session{Email: req.Email, DisplayName: req.Name}
	s.session = &session

	if req.Remember {
		s.store.SaveSession(session)
	}

	s.logger.Info("account created", "email", req.Email)
	return session, nil
}

// Logout drops the session in memory and on disk.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.store.DeleteSession()
	s.logger.Info("signed out")
}

// Current returns the active session, if any.
func (s *AuthService) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// IsAuthed reports whether anyone is signed in.
func (s *AuthService) IsAuthed() bool {
	_, ok := s.Current()
	return ok
}

// SetDisplayName updates the session's display name and persists it.
// Requires an active session.
func (s *AuthService) SetDisplayName(name string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.Session{}, domainerrors.Validation("not signed in")
	}

	session := domain.Session{Email: s.session.Email, DisplayName: name}
	s.session = &session
	s.store.SaveSession(session)

	return session, nil
}

// formatValidationError converts validator errors to user-friendly domain errors.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// Return first validation error as a domain error
		for _, e := range validationErrs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				return domainerrors.Validationf("%s is required", field)
			case "email":
				return domainerrors.Validationf("%s must be a valid email address", field)
			default:
				return domainerrors.Validationf("%s is invalid", field)
			}
		}
	}
	return err
}
