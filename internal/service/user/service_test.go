package user

import (
	"context"
	"testing"

	"assistmenow/internal/domain"
	userrepo "assistmenow/internal/repository/user"
	"assistmenow/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, repo userrepo.Repository) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	u, err := repo.Create(context.Background(), domain.User{
		Username:      "staff",
		Email:         "staff@assistmenow.org",
		Role:          domain.RoleStaff,
		PasswordHash:  hash,
		Notifications: auth.DefaultNotifications(),
	})
	require.NoError(t, err)
	return u
}

func TestUpdateProfile(t *testing.T) {
	repo := userrepo.NewMemory()
	svc := New(repo)
	u := newUser(t, repo)
	ctx := context.Background()

	first := "Nomsa"
	email := " Nomsa@Example.com "
	got, err := svc.UpdateProfile(ctx, u.ID, domain.ProfilePatch{FirstName: &first, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Nomsa", got.FirstName)
	assert.Equal(t, "nomsa@example.com", got.Email)
	assert.Equal(t, "staff", got.Username)

	blank := "  "
	_, err = svc.UpdateProfile(ctx, u.ID, domain.ProfilePatch{Email: &blank})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestChangePassword(t *testing.T) {
	repo := userrepo.NewMemory()
	svc := New(repo)
	u := newUser(t, repo)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, u.ID, "not-it", "new-password")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Current password is incorrect", verr.Message)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "password", "new-password"))
	err = svc.ChangePassword(ctx, u.ID, "password", "another-one")
	assert.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "missing", "a", "b"), domain.ErrNotFound)
}

func TestUpdateNotifications(t *testing.T) {
	repo := userrepo.NewMemory()
	svc := New(repo)
	u := newUser(t, repo)
	ctx := context.Background()

	var patch domain.NotificationPatch
	patch.SMS = &struct {
		DeliveryUpdates     *bool `json:"deliveryUpdates"`
		UrgentNotifications *bool `json:"urgentNotifications"`
	}{}
	off := false
	patch.SMS.UrgentNotifications = &off

	got, err := svc.UpdateNotifications(ctx, u.ID, patch)
	require.NoError(t, err)
	assert.False(t, got.SMS.UrgentNotifications)
	assert.True(t, got.Email.DeliveryUpdates)

	stored, err := svc.Notifications(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}
