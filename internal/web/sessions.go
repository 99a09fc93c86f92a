package web

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"kingdomsperil/internal/game"
)

// SessionStore keeps live playthroughs by browser session id. Sessions are
// memory-only and dropped once their playthrough ends.
type SessionStore struct {
	mu sync.RWMutex
	m  map[string]*game.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{m: map[string]*game.Session{}}
}

func (s *SessionStore) Get(id string) (*game.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[id]
	return sess, ok
}

func (s *SessionStore) Put(id string, sess *game.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = sess
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

func (s *SessionStore) NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
