package delivery

import (
	"context"
	"time"

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

const deliveryColumns = `id, hamper_id, recipient_id, status, assigned_to, scheduled_date, delivery_date, notes,
       created_by, created_at, updated_at`

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) Create(ctx context.Context, d domain.Delivery) (*domain.Delivery, error) {
	now := repository.Now()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	return r.write(ctx, r.pool, d)
}

func (r *postgresRepo) Upsert(ctx context.Context, d domain.Delivery) (*domain.Delivery, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = repository.Now()
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = d.CreatedAt
	}
	return r.write(ctx, r.pool, d)
}

func (r *postgresRepo) write(ctx context.Context, q querier, d domain.Delivery) (*domain.Delivery, error) {
	const stmt = `
INSERT INTO deliveries (id, hamper_id, recipient_id, status, assigned_to, scheduled_date, delivery_date, notes,
                        created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE
SET hamper_id = EXCLUDED.hamper_id,
    recipient_id = EXCLUDED.recipient_id,
    status = EXCLUDED.status,
    assigned_to = EXCLUDED.assigned_to,
    scheduled_date = EXCLUDED.scheduled_date,
    delivery_date = EXCLUDED.delivery_date,
    notes = EXCLUDED.notes,
    created_by = EXCLUDED.created_by,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at
RETURNING ` + deliveryColumns
	return r.scan(q.QueryRow(ctx, stmt,
		d.ID, d.HamperID, d.RecipientID, string(d.Status), d.AssignedTo,
		d.ScheduledDate, d.DeliveryDate, d.Notes, d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Delivery, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+deliveryColumns+` FROM deliveries ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Delivery{}
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id))
}

func (r *postgresRepo) Update(ctx context.Context, id string, mutate func(*domain.Delivery) error) (*domain.Delivery, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cur, err := r.scan(tx.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1 FOR UPDATE`, id))
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	var status string
	var scheduled, delivered *time.Time
	err := row.Scan(
		&d.ID,
		&d.HamperID,
		&d.RecipientID,
		&status,
		&d.AssignedTo,
		&scheduled,
		&delivered,
		&d.Notes,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		err = repository.TranslateError(err)
		if err != domain.ErrNotFound {
			r.logger.Error("delivery repo: scan", zap.Error(err))
		}
		return nil, err
	}
	d.Status = domain.DeliveryStatus(status)
	d.ScheduledDate = utcPtr(scheduled)
	d.DeliveryDate = utcPtr(delivered)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
