// Package repository holds helpers shared by the Postgres repositories.
package repository

import (
	"errors"
	"time"

	"assistmenow/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// NextUpdatedAt returns the timestamp to store as updated_at after prev. It never goes backwards
// and is truncated to the microsecond resolution of timestamptz.
func NextUpdatedAt(prev time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

// Now returns the current time at timestamptz resolution.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// TranslateError maps driver errors onto domain errors.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyExists
	}
	return err
}
