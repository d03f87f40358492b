package httpserver

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"assistmenow/internal/domain"
	authsvc "assistmenow/internal/service/auth"
	"assistmenow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func seededRouter(t *testing.T) http.Handler {
	t.Helper()
	stores := store.Memory()
	require.NoError(t, stores.Seed(context.Background(), zap.NewNop()))
	router, err := buildRouter(logDiscard(), memoryDeps(stores))
	require.NoError(t, err)
	return router
}

func login(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/login", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[loginResponse](t, rec)
	require.NotEmpty(t, body.Token)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), tokenCookie+"="+body.Token)
	return body.Token
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := seededRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong-password"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decode[errorResponse](t, rec).Error)
}

func TestProfile_UnauthorizedWithoutToken(t *testing.T) {
	router := seededRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/users/profile", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_WithBearerToken(t *testing.T) {
	router := seededRouter(t)
	token := login(t, router, "admin", "password123")

	rec := doJSON(t, router, http.MethodGet, "/users/profile", "", "Authorization", "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	u := decode[domain.User](t, rec)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreatedBy_UsesSessionUser(t *testing.T) {
	router := seededRouter(t)
	token := login(t, router, "staff", "password123")

	rec := doJSON(t, router, http.MethodPost, "/recipients", recipientBody, "Cookie", tokenCookie+"="+token)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "2", decode[domain.Recipient](t, rec).CreatedBy)
}

func TestLogout_RevokesToken(t *testing.T) {
	router := seededRouter(t)
	token := login(t, router, "admin", "password123")

	rec := doJSON(t, router, http.MethodPost, "/auth/logout", "", "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[logoutResponse](t, rec).Success)

	rec = doJSON(t, router, http.MethodGet, "/users/profile", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister(t *testing.T) {
	router := seededRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", `{"username":"lerato","email":"lerato@example.com","password":"long-enough"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, domain.RoleVolunteer, decode[domain.User](t, rec).Role)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", `{"username":"lerato","email":"other@example.com","password":"long-enough"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", `{"username":"sam"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username, email, and password are required", decode[errorResponse](t, rec).Error)

	login(t, router, "lerato", "long-enough")
}

func TestChangePassword(t *testing.T) {
	router := seededRouter(t)
	token := login(t, router, "staff", "password123")
	auth := []string{"Authorization", "Bearer " + token}

	rec := doJSON(t, router, http.MethodPut, "/users/password", `{"currentPassword":"nope-nope","newPassword":"new-password"}`, auth...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Current password is incorrect", decode[errorResponse](t, rec).Error)

	rec = doJSON(t, router, http.MethodPut, "/users/password", `{"currentPassword":"password123"}`, auth...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Current password and new password are required", decode[errorResponse](t, rec).Error)

	rec = doJSON(t, router, http.MethodPut, "/users/password", `{"currentPassword":"password123","newPassword":"new-password"}`, auth...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	login(t, router, "staff", "new-password")
}

func TestNotifications_PartialUpdate(t *testing.T) {
	router := seededRouter(t)
	token := login(t, router, "admin", "password123")
	auth := []string{"Authorization", "Bearer " + token}

	rec := doJSON(t, router, http.MethodPut, "/users/notifications", `{"email":{"recipientUpdates":true}}`, auth...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[domain.NotificationSettings](t, rec)
	want := domain.NotificationSettings{
		Email: domain.EmailNotifications{DeliveryUpdates: true, NewHampers: true, RecipientUpdates: true},
		SMS:   domain.SMSNotifications{UrgentNotifications: true},
	}
	assert.Equal(t, want, got)

	rec = doJSON(t, router, http.MethodGet, "/users/notifications", "", auth...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decode[domain.NotificationSettings](t, rec))
}

func TestExpiredSessionIsRejected(t *testing.T) {
	stores := store.Memory()
	require.NoError(t, stores.Seed(context.Background(), zap.NewNop()))
	deps := memoryDeps(stores)
	deps.AuthSvc = authsvc.New(stores.Users, stores.Sessions, -time.Minute)
	router, err := buildRouter(logDiscard(), deps)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", `{"username":"admin","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[loginResponse](t, rec).Token

	rec = doJSON(t, router, http.MethodGet, "/users/profile", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type brokenSessionAuth struct {
	AuthService
}

func (brokenSessionAuth) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, errors.New("session store unavailable")
}

func TestSessionLookupFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	deps := memoryDeps(store.Memory())
	deps.AuthSvc = brokenSessionAuth{AuthService: deps.AuthSvc}
	router, err := buildRouter(zap.New(core), deps)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/recipients", recipientBody, "Authorization", "Bearer some-token")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", decode[errorResponse](t, rec).Code)
	assert.Equal(t, 1, logs.FilterMessage("session lookup failed").Len())

	rec = doJSON(t, router, http.MethodGet, "/recipients", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
