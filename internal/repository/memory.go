package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mtlprog/roicalc/internal/domain"
)

// MemorySessionStore keeps sessions in process memory. Used when no database is configured.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

// NewMemorySessionStore creates an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domain.Session),
	}
}

// Create inserts a new session.
func (m *MemorySessionStore) Create(_ context.Context, session *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	m.sessions[session.ID] = *session
	return nil
}

// GetByID returns a copy of the stored session.
func (m *MemorySessionStore) GetByID(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

// Update applies fn to a copy and stores it only if fn succeeds.
func (m *MemorySessionStore) Update(_ context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if err := fn(&session); err != nil {
		return nil, err
	}
	m.sessions[id] = session

	out := session
	return &out, nil
}

// Delete removes a session.
func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// DeleteExpired removes every session expired at now.
func (m *MemorySessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for id, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}
