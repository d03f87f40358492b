package session

import (
	"context"

	"assistmenow/internal/domain"
)

// Repository stores login sessions keyed by token.
type Repository interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
