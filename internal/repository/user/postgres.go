package user

import (
	"context"
	"encoding/json"
	"errors"

	"assistmenow/internal/domain"
	"assistmenow/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const userColumns = `id, username, email, phone, role, first_name, last_name, password_hash, notifications,
       created_at, updated_at`

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	now := repository.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	return r.write(ctx, r.pool, u)
}

func (r *postgresRepo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = repository.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	return r.write(ctx, r.pool, u)
}

func (r *postgresRepo) write(ctx context.Context, q querier, u domain.User) (*domain.User, error) {
	notifJSON, err := json.Marshal(u.Notifications)
	if err != nil {
		return nil, err
	}
	const stmt = `
INSERT INTO users (id, username, email, phone, role, first_name, last_name, password_hash, notifications,
                   created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE
SET username = EXCLUDED.username,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    role = EXCLUDED.role,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    password_hash = EXCLUDED.password_hash,
    notifications = EXCLUDED.notifications,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at
RETURNING ` + userColumns
	return r.scan(q.QueryRow(ctx, stmt,
		u.ID, u.Username, u.Email, u.Phone, string(u.Role), u.FirstName, u.LastName,
		u.PasswordHash, notifJSON, u.CreatedAt, u.UpdatedAt,
	))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.User{}
	for rows.Next() {
		u, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1) LIMIT 1`
	return r.scan(r.pool.QueryRow(ctx, q, username))
}

func (r *postgresRepo) Update(ctx context.Context, id string, mutate func(*domain.User) error) (*domain.User, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cur, err := r.scan(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	next := *cur
	if err := mutate(&next); err != nil {
		return nil, err
	}
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = repository.NextUpdatedAt(cur.UpdatedAt)

	out, err := r.write(ctx, tx, next)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	var notifJSON []byte
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Phone,
		&role,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&notifJSON,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		err = repository.TranslateError(err)
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrAlreadyExists) {
			r.logger.Error("user repo: scan", zap.Error(err))
		}
		return nil, err
	}
	u.Role = domain.UserRole(role)
	if len(notifJSON) > 0 {
		if err := json.Unmarshal(notifJSON, &u.Notifications); err != nil {
			r.logger.Error("user repo: decode notifications", zap.String("id", u.ID), zap.Error(err))
			return nil, err
		}
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}
