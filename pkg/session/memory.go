package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in-process. Used in fixture mode and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session Session
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(_ context.Context, sess *Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memoryEntry{
		session: *sess,
		expires: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expires) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	sess := entry.session
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}
