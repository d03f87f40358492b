package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"assistmenow/internal/domain"
	"assistmenow/internal/repository/memstore"
)

type memoryRepo struct {
	// writeMu serialises the username uniqueness check with the insert.
	writeMu sync.Mutex
	items   *memstore.Collection[domain.User]
}

// NewMemory returns a Repository kept in process memory.
func NewMemory(opts ...memstore.Option) Repository {
	return &memoryRepo{items: memstore.New(memstore.Fields[domain.User]{
		ID:        func(u *domain.User) *string { return &u.ID },
		CreatedAt: func(u *domain.User) *time.Time { return &u.CreatedAt },
		UpdatedAt: func(u *domain.User) *time.Time { return &u.UpdatedAt },
	}, opts...)}
}

func (m *memoryRepo) taken(username, exceptID string) bool {
	_, err := m.items.Find(func(u domain.User) bool {
		return u.ID != exceptID && strings.EqualFold(u.Username, username)
	})
	return err == nil
}

func (m *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.taken(u.Username, "") {
		return nil, domain.ErrAlreadyExists
	}
	out := m.items.Create(u)
	return &out, nil
}

func (m *memoryRepo) Upsert(_ context.Context, u domain.User) (*domain.User, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.taken(u.Username, u.ID) {
		return nil, domain.ErrAlreadyExists
	}
	out := m.items.Upsert(u)
	return &out, nil
}

func (m *memoryRepo) List(_ context.Context) ([]domain.User, error) {
	return m.items.List(), nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, err := m.items.Get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *memoryRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, err := m.items.Find(func(u domain.User) bool { return strings.EqualFold(u.Username, username) })
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *memoryRepo) Update(_ context.Context, id string, mutate func(*domain.User) error) (*domain.User, error) {
	u, err := m.items.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
