// Package store selects and opens the repository backend named in the configuration.
package store

import (
	"context"
	"fmt"

	"assistmenow/internal/config"
	"assistmenow/internal/db"
	"assistmenow/internal/migrate"
	deliveryrepo "assistmenow/internal/repository/delivery"
	hamperrepo "assistmenow/internal/repository/hamper"
	recipientrepo "assistmenow/internal/repository/recipient"
	sessionrepo "assistmenow/internal/repository/session"
	userrepo "assistmenow/internal/repository/user"
	"assistmenow/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Stores bundles one repository per collection.
type Stores struct {
	Recipients recipientrepo.Repository
	Hampers    hamperrepo.Repository
	Deliveries deliveryrepo.Repository
	Users      userrepo.Repository
	Sessions   sessionrepo.Repository

	pool *pgxpool.Pool
}

// Memory returns process-local stores.
func Memory() *Stores {
	return &Stores{
		Recipients: recipientrepo.NewMemory(),
		Hampers:    hamperrepo.NewMemory(),
		Deliveries: deliveryrepo.NewMemory(),
		Users:      userrepo.NewMemory(),
		Sessions:   sessionrepo.NewMemory(),
	}
}

// Postgres returns stores backed by pool.
func Postgres(pool *pgxpool.Pool, logger *zap.Logger) *Stores {
	return &Stores{
		Recipients: recipientrepo.NewPostgres(pool, logger),
		Hampers:    hamperrepo.NewPostgres(pool, logger),
		Deliveries: deliveryrepo.NewPostgres(pool, logger),
		Users:      userrepo.NewPostgres(pool, logger),
		Sessions:   sessionrepo.NewPostgres(pool),
		pool:       pool,
	}
}

// Open builds the configured backend. For postgres it connects and applies migrations.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Stores, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return Memory(), nil
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to db: %w", err)
		}
		if err := migrate.Apply(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return Postgres(pool, logger), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// Seed writes the demo data set into the stores.
func (s *Stores) Seed(ctx context.Context, logger *zap.Logger) error {
	return seed.Apply(ctx, seed.Stores{
		Users:      s.Users,
		Recipients: s.Recipients,
		Hampers:    s.Hampers,
		Deliveries: s.Deliveries,
	}, logger)
}

// Ready pings the database. Memory stores are always ready.
func (s *Stores) Ready(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// Close releases the database pool, if any.
func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
