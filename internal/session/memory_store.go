package session

import (
	"sync"
	"time"
)

// MemoryStore is a process-local Store. Good enough for tests and
// single-instance deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session), ttl: ttl}
}

func (s *MemoryStore) Create(userID uint, email string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[hashToken(token)] = Session{
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) Get(token string) (*Session, error) {
	key := hashToken(token)

	s.mu.RLock()
	sess, ok := s.sessions[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, key)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	out := sess
	return &out, nil
}

func (s *MemoryStore) Destroy(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, hashToken(token))
	return nil
}

func (s *MemoryStore) DeleteExpired() (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	var dropped int64
	for key, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, key)
			dropped++
		}
	}
	return dropped, nil
}
