package hamper

import (
	"context"
	"time"

	"assistmenow/internal/domain"
	"assistmenow/internal/repository/memstore"
)

type memoryRepo struct {
	items *memstore.Collection[domain.Hamper]
}

// NewMemory returns a Repository kept in process memory.
func NewMemory(opts ...memstore.Option) Repository {
	return &memoryRepo{items: memstore.New(memstore.Fields[domain.Hamper]{
		ID:        func(v *domain.Hamper) *string { return &v.ID },
		CreatedAt: func(v *domain.Hamper) *time.Time { return &v.CreatedAt },
		UpdatedAt: func(v *domain.Hamper) *time.Time { return &v.UpdatedAt },
		Clone:     domain.Hamper.Clone,
	}, opts...)}
}

func (m *memoryRepo) Create(_ context.Context, v domain.Hamper) (*domain.Hamper, error) {
	out := m.items.Create(v)
	return &out, nil
}

func (m *memoryRepo) List(_ context.Context) ([]domain.Hamper, error) {
	return m.items.List(), nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*domain.Hamper, error) {
	v, err := m.items.Get(id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (m *memoryRepo) Update(_ context.Context, id string, mutate func(*domain.Hamper) error) (*domain.Hamper, error) {
	v, err := m.items.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	return m.items.Delete(id)
}

func (m *memoryRepo) Upsert(_ context.Context, v domain.Hamper) (*domain.Hamper, error) {
	out := m.items.Upsert(v)
	return &out, nil
}
