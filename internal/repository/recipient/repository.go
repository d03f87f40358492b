package recipient

import (
	"context"

	"assistmenow/internal/domain"
)

// Repository persists and fetches recipients.
type Repository interface {
	Create(ctx context.Context, r domain.Recipient) (*domain.Recipient, error)
	List(ctx context.Context) ([]domain.Recipient, error)
	GetByID(ctx context.Context, id string) (*domain.Recipient, error)
	Update(ctx context.Context, id string, mutate func(*domain.Recipient) error) (*domain.Recipient, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, r domain.Recipient) (*domain.Recipient, error)
}
