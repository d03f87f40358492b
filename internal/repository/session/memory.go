package session

import (
	"context"
	"sync"
	"time"

	"assistmenow/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemory returns a Repository kept in process memory.
func NewMemory() Repository {
	return &memoryRepo{sessions: make(map[string]domain.Session)}
}

func (m *memoryRepo) Create(_ context.Context, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.Token]; exists {
		return domain.ErrAlreadyExists
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m.sessions[s.Token] = s
	return nil
}

func (m *memoryRepo) Get(_ context.Context, token string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *memoryRepo) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sessions, token)
	return nil
}
