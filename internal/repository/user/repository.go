package user

import (
	"context"

	"assistmenow/internal/domain"
)

// Repository persists and fetches users. Usernames are unique; Create and Upsert return
// domain.ErrAlreadyExists when another user holds the username. Update does not change usernames.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id string, mutate func(*domain.User) error) (*domain.User, error)
	Upsert(ctx context.Context, u domain.User) (*domain.User, error)
}
