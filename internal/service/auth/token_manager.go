package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"assistmenow/internal/domain"
	sessionrepo "assistmenow/internal/repository/session"
)

type tokenManager struct {
	repo sessionrepo.Repository
	now  func() time.Time
}

func newTokenManager(repo sessionrepo.Repository, now func() time.Time) *tokenManager {
	return &tokenManager{repo: repo, now: now}
}

func (m *tokenManager) Issue(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	expiresAt := m.now().Add(ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, domain.Session{
			Token:     token,
			UserID:    userID,
			ExpiresAt: expiresAt,
			CreatedAt: m.now(),
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

// Validate returns the user id bound to a live token. Expired tokens are removed. Unknown and
// expired tokens report false with a nil error; store failures are returned as is.
func (m *tokenManager) Validate(ctx context.Context, token string) (string, bool, error) {
	s, err := m.repo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load session: %w", err)
	}
	if m.now().After(s.ExpiresAt) {
		if err := m.repo.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", false, fmt.Errorf("drop expired session: %w", err)
		}
		return "", false, nil
	}
	return s.UserID, true, nil
}

func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	err := m.repo.Delete(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
