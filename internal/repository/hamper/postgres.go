package hamper

import (
	"context"
	"encoding/json"

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

// NewPostgres returns a Repository backed by Postgres. Contents are stored as jsonb.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const hamperColumns = `id, name, description, contents, created_by, created_at, updated_at`

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) Create(ctx context.Context, h domain.Hamper) (*domain.Hamper, error) {
	now := repository.Now()
	h.ID = uuid.NewString()
	h.CreatedAt = now
	h.UpdatedAt = now
	return r.write(ctx, r.pool, h)
}

func (r *postgresRepo) Upsert(ctx context.Context, h domain.Hamper) (*domain.Hamper, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = repository.Now()
	}
	if h.UpdatedAt.IsZero() {
		h.UpdatedAt = h.CreatedAt
	}
	return r.write(ctx, r.pool, h)
}

func (r *postgresRepo) write(ctx context.Context, q querier, h domain.Hamper) (*domain.Hamper, error) {
	contents := h.Contents
	if contents == nil {
		contents = []domain.HamperItem{}
	}
	contentsJSON, err := json.Marshal(contents)
	if err != nil {
		return nil, err
	}
	const stmt = `
INSERT INTO hampers (id, name, description, contents, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    contents = EXCLUDED.contents,
    created_by = EXCLUDED.created_by,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at
RETURNING ` + hamperColumns
	return r.scan(q.QueryRow(ctx, stmt, h.ID, h.Name, h.Description, contentsJSON, h.CreatedBy, h.CreatedAt, h.UpdatedAt))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Hamper, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+hamperColumns+` FROM hampers ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Hamper{}
	for rows.Next() {
		h, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Hamper, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+hamperColumns+` FROM hampers WHERE id = $1`, id))
}

func (r *postgresRepo) Update(ctx context.Context, id string, mutate func(*domain.Hamper) error) (*domain.Hamper, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cur, err := r.scan(tx.QueryRow(ctx, `SELECT `+hamperColumns+` FROM hampers WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	next := cur.Clone()
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hampers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Hamper, error) {
	var h domain.Hamper
	var contentsJSON []byte
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &contentsJSON, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
		err = repository.TranslateError(err)
		if err != domain.ErrNotFound {
			r.logger.Error("hamper repo: scan", zap.Error(err))
		}
		return nil, err
	}
	if len(contentsJSON) > 0 {
		if err := json.Unmarshal(contentsJSON, &h.Contents); err != nil {
			r.logger.Error("hamper repo: decode contents", zap.String("id", h.ID), zap.Error(err))
			return nil, err
		}
	}
	h.CreatedAt = h.CreatedAt.UTC()
	h.UpdatedAt = h.UpdatedAt.UTC()
	return &h, nil
}
