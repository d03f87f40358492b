package delivery

import (
	"context"
	"time"

	"assistmenow/internal/domain"
	"assistmenow/internal/repository/memstore"
)

type memoryRepo struct {
	items *memstore.Collection[domain.Delivery]
}

// NewMemory returns a Repository kept in process memory.
func NewMemory(opts ...memstore.Option) Repository {
	return &memoryRepo{items: memstore.New(memstore.Fields[domain.Delivery]{
		ID:        func(v *domain.Delivery) *string { return &v.ID },
		CreatedAt: func(v *domain.Delivery) *time.Time { return &v.CreatedAt },
		UpdatedAt: func(v *domain.Delivery) *time.Time { return &v.UpdatedAt },
		Clone:     domain.Delivery.Clone,
	}, opts...)}
}

func (m *memoryRepo) Create(_ context.Context, v domain.Delivery) (*domain.Delivery, error) {
	out := m.items.Create(v)
	return &out, nil
}

func (m *memoryRepo) List(_ context.Context) ([]domain.Delivery, error) {
	return m.items.List(), nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*domain.Delivery, error) {
	v, err := m.items.Get(id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (m *memoryRepo) Update(_ context.Context, id string, mutate func(*domain.Delivery) error) (*domain.Delivery, error) {
	v, err := m.items.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	return m.items.Delete(id)
}

func (m *memoryRepo) Upsert(_ context.Context, v domain.Delivery) (*domain.Delivery, error) {
	out := m.items.Upsert(v)
	return &out, nil
}
