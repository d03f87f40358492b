package recipient

import (
	"context"
	"time"

	"assistmenow/internal/domain"
	"assistmenow/internal/repository/memstore"
)

type memoryRepo struct {
	items *memstore.Collection[domain.Recipient]
}

// NewMemory returns a Repository kept in process memory.
func NewMemory(opts ...memstore.Option) Repository {
	return &memoryRepo{items: memstore.New(memstore.Fields[domain.Recipient]{
		ID:        func(r *domain.Recipient) *string { return &r.ID },
		CreatedAt: func(r *domain.Recipient) *time.Time { return &r.CreatedAt },
		UpdatedAt: func(r *domain.Recipient) *time.Time { return &r.UpdatedAt },
	}, opts...)}
}

func (m *memoryRepo) Create(_ context.Context, r domain.Recipient) (*domain.Recipient, error) {
	out := m.items.Create(r)
	return &out, nil
}

func (m *memoryRepo) List(_ context.Context) ([]domain.Recipient, error) {
	return m.items.List(), nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*domain.Recipient, error) {
	r, err := m.items.Get(id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (m *memoryRepo) Update(_ context.Context, id string, mutate func(*domain.Recipient) error) (*domain.Recipient, error) {
	r, err := m.items.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	return m.items.Delete(id)
}

func (m *memoryRepo) Upsert(_ context.Context, r domain.Recipient) (*domain.Recipient, error) {
	out := m.items.Upsert(r)
	return &out, nil
}
