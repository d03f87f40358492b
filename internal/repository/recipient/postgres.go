package recipient

import (
	"context"

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

const recipientColumns = `id, first_name, last_name, email, phone, street, city, state, postal_code, country,
       notes, photo_url, created_by, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, rec domain.Recipient) (*domain.Recipient, error) {
	now := repository.Now()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return r.write(ctx, r.pool, rec)
}

func (r *postgresRepo) Upsert(ctx context.Context, rec domain.Recipient) (*domain.Recipient, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = repository.Now()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	return r.write(ctx, r.pool, rec)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) write(ctx context.Context, q querier, rec domain.Recipient) (*domain.Recipient, error) {
	const stmt = `
INSERT INTO recipients (id, first_name, last_name, email, phone, street, city, state, postal_code, country,
                        notes, photo_url, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE
SET first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    street = EXCLUDED.street,
    city = EXCLUDED.city,
    state = EXCLUDED.state,
    postal_code = EXCLUDED.postal_code,
    country = EXCLUDED.country,
    notes = EXCLUDED.notes,
    photo_url = EXCLUDED.photo_url,
    created_by = EXCLUDED.created_by,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at
RETURNING ` + recipientColumns
	a := rec.Address
	return r.scan(q.QueryRow(ctx, stmt,
		rec.ID, rec.FirstName, rec.LastName, rec.Email, rec.Phone,
		a.Street, a.City, a.State, a.PostalCode, a.Country,
		rec.Notes, rec.PhotoURL, rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt,
	))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Recipient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recipientColumns+` FROM recipients ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Recipient{}
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Recipient, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+recipientColumns+` FROM recipients WHERE id = $1`, id))
}

func (r *postgresRepo) Update(ctx context.Context, id string, mutate func(*domain.Recipient) error) (*domain.Recipient, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cur, err := r.scan(tx.QueryRow(ctx, `SELECT `+recipientColumns+` FROM recipients WHERE id = $1 FOR UPDATE`, id))
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

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Recipient, error) {
	var rec domain.Recipient
	err := row.Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&rec.Phone,
		&rec.Address.Street,
		&rec.Address.City,
		&rec.Address.State,
		&rec.Address.PostalCode,
		&rec.Address.Country,
		&rec.Notes,
		&rec.PhotoURL,
		&rec.CreatedBy,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		err = repository.TranslateError(err)
		if err != domain.ErrNotFound {
			r.logger.Error("recipient repo: scan", zap.Error(err))
		}
		return nil, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return &rec, nil
}
