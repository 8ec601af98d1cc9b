// Package state holds the two process-wide stores the client renders from:
// the authenticated Session and the Feed Cache. Both expose a narrow
// mutation API and nothing else; components never write to them directly.
//
// The stores are mutex-guarded because command handlers and staged
// operations may complete on different goroutines.
package state

import (
	"sync"

	"github.com/dkurbatovs/pulse/internal/client/models"
)

// SessionStore owns the current Session. It is empty until a successful
// login publishes one, and empty again after Clear.
type SessionStore struct {
	mu      sync.RWMutex
	session *models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Set publishes a new session, replacing any previous one.
func (s *SessionStore) Set(sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &sess
}

// Clear removes the session, e.g. on logout.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Current returns a copy of the session and whether one is present.
func (s *SessionStore) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// Token returns the bearer token of the current session, if any. Absence
// of a token means no authenticated request may be issued.
func (s *SessionStore) Token() (string, bool) {
	sess, ok := s.Current()
	if !ok {
		return "", false
	}
	return sess.Token, true
}
