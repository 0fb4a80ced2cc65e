// Package session provides a token-keyed key/value session store and the
// signed-cookie transport that carries the token between requests.
package session

import "sync"

// Attribute keys stored per session.
const (
	KeyUserRole   = "user_role"
	KeyStudentID  = "student_id"
	KeyFirstLogin = "first_login"
)

// Store maps an opaque session token to a small set of string attributes.
type Store interface {
	Set(token, key, value string)
	Get(token, key string) (string, bool)
	Delete(token, key string)
	Clear(token string)
}

// MemoryStore is an in-process Store implementation. Sessions live only as
// long as the process; the signed cookie alone cannot resurrect attributes.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]map[string]string),
	}
}

// Set stores an attribute under the session token
func (s *MemoryStore) Set(token, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs, ok := s.sessions[token]
	if !ok {
		attrs = make(map[string]string)
		s.sessions[token] = attrs
	}
	attrs[key] = value
}

// Get returns an attribute of the session, reporting whether it was present
func (s *MemoryStore) Get(token, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attrs, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	value, ok := attrs[key]
	return value, ok
}

// Delete removes a single attribute from the session
func (s *MemoryStore) Delete(token, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attrs, ok := s.sessions[token]; ok {
		delete(attrs, key)
	}
}

// Clear removes the session and all its attributes
func (s *MemoryStore) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}
