package delivery

import (
	"context"

	"assistmenow/internal/domain"
)

// Repository persists and fetches deliveries.
type Repository interface {
	Create(ctx context.Context, v domain.Delivery) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	GetByID(ctx context.Context, id string) (*domain.Delivery, error)
	Update(ctx context.Context, id string, mutate func(*domain.Delivery) error) (*domain.Delivery, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, v domain.Delivery) (*domain.Delivery, error)
}
