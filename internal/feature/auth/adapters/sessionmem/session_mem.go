// Package sessionmem holds the token to username bindings in memory.
//
// Sessions are fully recomputable from the token formula, so losing them on
// restart only forces a re-login; nothing is persisted.
package sessionmem

import (
	"sync"

	"energy_backend/internal/feature/auth/domain/entity"
)

// Store is a concurrency-safe token to session map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]entity.Session)}
}

// Put records a token as belonging to a username.
func (s *Store) Put(token, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entity.Session{Token: token, Username: username}
}

// Owner returns the username bound to a token, if any.
func (s *Store) Owner(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	return session.Username, ok
}
