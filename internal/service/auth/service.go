// Package auth issues and resolves login sessions. It identifies callers; it does not decide what
// they may do.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"assistmenow/internal/domain"
	sessionrepo "assistmenow/internal/repository/session"
	userrepo "assistmenow/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Service handles login, logout, registration and token lookups.
type Service struct {
	users      userrepo.Repository
	tokens     *tokenManager
	sessionTTL time.Duration
}

func New(users userrepo.Repository, sessions sessionrepo.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		users:      users,
		tokens:     newTokenManager(sessions, func() time.Time { return time.Now().UTC() }),
		sessionTTL: sessionTTL,
	}
}

// SessionTTL exposes the session lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Login checks the credentials and opens a session.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout closes the session. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, token)
}

// Authenticate returns the user bound to a live token.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	userID, ok, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates a VOLUNTEER account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.Invalid("Username, email, and password are required")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, domain.User{
		Username:      username,
		Email:         email,
		Phone:         in.Phone,
		Role:          domain.RoleVolunteer,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		PasswordHash:  hash,
		Notifications: DefaultNotifications(),
	})
}

// HashPassword validates and bcrypt-hashes a password.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", domain.Invalid("Password must be at least 8 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// DefaultNotifications are the toggles a new account starts with.
func DefaultNotifications() domain.NotificationSettings {
	return domain.NotificationSettings{
		Email: domain.EmailNotifications{DeliveryUpdates: true},
		SMS:   domain.SMSNotifications{UrgentNotifications: true},
	}
}
