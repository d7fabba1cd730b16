package store

import "github.com/trailbookapp/trailbook/internal/domain"

// Session returns the persisted sign-in, if one was remembered.
func (s *Store) Session() (domain.Session, bool) {
	var session domain.Session
	if !s.load(sessionKey, &session) || session.Email == "" {
		return domain.Session{}, false
	}
	return session, true
}

// SaveSession persists a sign-in across runs.
func (s *Store) SaveSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(sessionKey, session)
}

// DeleteSession forgets the persisted sign-in.
func (s *Store) DeleteSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(sessionKey)
}
