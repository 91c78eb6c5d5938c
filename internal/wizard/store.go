package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session pairs a wizard with its identifier and creation time.
type Session struct {
	ID        string
	CreatedAt time.Time
	Wizard    *Wizard
}

// Store is the in-memory session registry. Sessions are created when the
// front end opens the wizard and deleted on final save or explicit discard.
type Store struct {
	mu sync.RWMutex
	m  map[string]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{m: make(map[string]*Session)}
}

// Create registers a new session around a fresh wizard.
func (s *Store) Create(lookup ClientLookup, clients ClientStore, orders OrderStore) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Wizard:    New(lookup, clients, orders),
	}
	s.mu.Lock()
	s.m[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id, if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[id]
	return sess, ok
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
