package session

import (
	"context"
	"sync"
	"time"
)

// TTL is how long a stored credential remains valid. Matches the 7-day
// expiry the platform puts on issued tokens.
const TTL = 7 * 24 * time.Hour

// Store holds the process-wide authentication credential and role marker.
// It is populated at login, read by every outgoing gateway request, and
// cleared on logout or when the platform reports the session expired.
type Store interface {
	// Set records the token and role for the configured TTL.
	Set(ctx context.Context, token, role string) error
	// Token returns the stored token, or "" when no session exists.
	Token(ctx context.Context) (string, error)
	// Role returns the stored role marker, or "" when no session exists.
	Role(ctx context.Context) (string, error)
	// Clear drops the stored credential.
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process Store used in tests and as a fallback when
// Redis is not configured.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	role    string
	expires time.Time
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Set(_ context.Context, token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.role = role
	s.expires = s.now().Add(TTL)
	return nil
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.expired() {
		return "", nil
	}
	return s.token, nil
}

func (s *MemoryStore) Role(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.expired() {
		return "", nil
	}
	return s.role, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.role = ""
	s.expires = time.Time{}
	return nil
}

// expired assumes the read lock is held.
func (s *MemoryStore) expired() bool {
	return s.token == "" || s.now().After(s.expires)
}
