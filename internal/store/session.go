package store

import (
	"sync"

	"hotelhub/internal/models"
)

// Session holds the active identity, or none. There is at most one signed-in
// identity at a time; it is never persisted.
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

func NewSession() *Session {
	return &Session{}
}

// SetCurrent makes u the active identity, replacing any previous one.
func (s *Session) SetCurrent(u models.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// Clear unconditionally removes the active identity.
func (s *Session) Clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Current returns the active identity, if any.
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
