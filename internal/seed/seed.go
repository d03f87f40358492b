// Package seed loads the demo data set used for local development.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"assistmenow/internal/domain"
	deliveryrepo "assistmenow/internal/repository/delivery"
	hamperrepo "assistmenow/internal/repository/hamper"
	recipientrepo "assistmenow/internal/repository/recipient"
	userrepo "assistmenow/internal/repository/user"
	"assistmenow/internal/service/auth"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtures []byte

type userSeed struct {
	ID            string                       `yaml:"id"`
	Username      string                       `yaml:"username"`
	Password      string                       `yaml:"password"`
	Email         string                       `yaml:"email"`
	Role          domain.UserRole              `yaml:"role"`
	FirstName     string                       `yaml:"firstName"`
	LastName      string                       `yaml:"lastName"`
	Notifications *domain.NotificationSettings `yaml:"notifications"`
}

// Data is the decoded fixture set.
type Data struct {
	Users      []userSeed         `yaml:"users"`
	Recipients []domain.Recipient `yaml:"recipients"`
	Hampers    []domain.Hamper    `yaml:"hampers"`
	Deliveries []domain.Delivery  `yaml:"deliveries"`
}

// Stores are the repositories the seed writes to.
type Stores struct {
	Users      userrepo.Repository
	Recipients recipientrepo.Repository
	Hampers    hamperrepo.Repository
	Deliveries deliveryrepo.Repository
}

// Load decodes the embedded fixtures.
func Load() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(fixtures, &d); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &d, nil
}

// Apply writes the demo records that are not stored yet. Records already present under a fixture
// id, and users whose username is taken, are left as they are.
func Apply(ctx context.Context, stores Stores, logger *zap.Logger) error {
	data, err := Load()
	if err != nil {
		return err
	}

	var inserted, skipped int
	count := func(added bool) {
		if added {
			inserted++
		} else {
			skipped++
		}
	}

	for _, u := range data.Users {
		added, err := insertUser(ctx, stores.Users, u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		count(added)
	}
	for _, r := range data.Recipients {
		added, err := insertMissing(ctx, r.ID, r, stores.Recipients.GetByID, stores.Recipients.Upsert)
		if err != nil {
			return fmt.Errorf("seed recipient %s: %w", r.ID, err)
		}
		count(added)
	}
	for _, h := range data.Hampers {
		added, err := insertMissing(ctx, h.ID, h, stores.Hampers.GetByID, stores.Hampers.Upsert)
		if err != nil {
			return fmt.Errorf("seed hamper %s: %w", h.ID, err)
		}
		count(added)
	}
	for _, d := range data.Deliveries {
		if !d.Status.Valid() {
			return fmt.Errorf("seed delivery %s: %w", d.ID, domain.ErrInvalidStatus)
		}
		added, err := insertMissing(ctx, d.ID, d, stores.Deliveries.GetByID, stores.Deliveries.Upsert)
		if err != nil {
			return fmt.Errorf("seed delivery %s: %w", d.ID, err)
		}
		count(added)
	}

	logger.Info("seed applied", zap.Int("inserted", inserted), zap.Int("skipped", skipped))
	return nil
}

func insertMissing[T any](
	ctx context.Context,
	id string,
	v T,
	get func(context.Context, string) (*T, error),
	put func(context.Context, T) (*T, error),
) (bool, error) {
	_, err := get(ctx, id)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	if _, err := put(ctx, v); err != nil {
		return false, err
	}
	return true, nil
}

func insertUser(ctx context.Context, users userrepo.Repository, u userSeed) (bool, error) {
	if !u.Role.Valid() {
		return false, fmt.Errorf("unknown role %q", u.Role)
	}
	if _, err := users.GetByUsername(ctx, u.Username); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	hash, err := auth.HashPassword(u.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	notifications := auth.DefaultNotifications()
	if u.Notifications != nil {
		notifications = *u.Notifications
	}
	return insertMissing(ctx, u.ID, domain.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		PasswordHash:  hash,
		Notifications: notifications,
	}, users.GetByID, users.Upsert)
}
