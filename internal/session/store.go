package session

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store is the session lookup abstraction injected into callers so the
// core never touches process-wide state. Implementations must return the
// same *Session for the same id until Delete.
type Store interface {
	// Get returns the session for an id, or false if absent.
	Get(id string) (*Session, bool)

	// Put registers or replaces a session under its id.
	Put(s *Session)

	// Delete removes a session.
	Delete(id string)
}

// MemoryStore is an in-memory Store. Safe for concurrent lookup, though
// sessions themselves still require per-session serialization.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemoryStore) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// GetOrCreate returns the session for an id, creating and registering a
// fresh one when absent.
func GetOrCreate(store Store, id string) *Session {
	if s, ok := store.Get(id); ok {
		return s
	}
	s := New(id)
	store.Put(s)
	return s
}

// Marshal serializes a session to JSON for persistence.
func Marshal(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal restores a session from its JSON form. The restored session
// uses the real clock.
func Unmarshal(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.StrengthCounts == nil {
		s.StrengthCounts = make(map[string]int)
	}
	if s.GapCounts == nil {
		s.GapCounts = make(map[string]int)
	}
	if s.QuizRecords == nil {
		s.QuizRecords = make(map[string]*QuizRecord)
	}
	if s.FreeQuizLimit == 0 {
		s.FreeQuizLimit = DefaultFreeQuizLimit
	}
	return &s, nil
}
