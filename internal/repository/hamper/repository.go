package hamper

import (
	"context"

	"assistmenow/internal/domain"
)

// Repository persists and fetches hampers.
type Repository interface {
	Create(ctx context.Context, v domain.Hamper) (*domain.Hamper, error)
	List(ctx context.Context) ([]domain.Hamper, error)
	GetByID(ctx context.Context, id string) (*domain.Hamper, error)
	Update(ctx context.Context, id string, mutate func(*domain.Hamper) error) (*domain.Hamper, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, v domain.Hamper) (*domain.Hamper, error)
}
