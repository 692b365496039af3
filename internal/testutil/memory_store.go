package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// MemorySessionStore keeps session collections in a map keyed by user id.
// It satisfies booking.Store and counts writes per user.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]domain.Session
	puts     map[string]int
	readErrs []error
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string][]domain.Session),
		puts:     make(map[string]int),
	}
}

func (m *MemorySessionStore) GetSessions(_ context.Context, userID string) ([]domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.readErrs) > 0 {
		err := m.readErrs[0]
		m.readErrs = m.readErrs[1:]
		return nil, err
	}
	return slices.Clone(m.sessions[userID]), nil
}

// FailNextReads makes the next len(errs) GetSessions calls return errs in
// order. Stored collections are untouched.
func (m *MemorySessionStore) FailNextReads(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrs = append(m.readErrs, errs...)
}

func (m *MemorySessionStore) PutSessions(_ context.Context, userID string, sessions []domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = slices.Clone(sessions)
	m.puts[userID]++
	return nil
}

// Puts reports how many times the user's collection has been written.
func (m *MemorySessionStore) Puts(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts[userID]
}
