package user

import (
	"context"
	"errors"
	"strings"

	"assistmenow/internal/domain"
	userrepo "assistmenow/internal/repository/user"
	"assistmenow/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

// Service manages the signed-in user's own profile and settings.
type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error) {
	if patch.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*patch.Email))
		if email == "" {
			return nil, domain.Invalid("Email cannot be empty")
		}
		patch.Email = &email
	}
	return s.repo.Update(ctx, userID, func(u *domain.User) error {
		patch.Apply(u)
		return nil
	})
}

// ChangePassword replaces the password after checking the current one.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return domain.Invalid("Current password and new password are required")
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.Invalid("Current password is incorrect")
		}
		return err
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	_, err = s.repo.Update(ctx, userID, func(u *domain.User) error {
		u.PasswordHash = hash
		return nil
	})
	return err
}

func (s *Service) Notifications(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &u.Notifications, nil
}

func (s *Service) UpdateNotifications(ctx context.Context, userID string, patch domain.NotificationPatch) (*domain.NotificationSettings, error) {
	u, err := s.repo.Update(ctx, userID, func(u *domain.User) error {
		patch.Apply(&u.Notifications)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u.Notifications, nil
}
