//go:build unit || e2e

// Package authtest signs in staff members against a running router, or mints
// tokens directly when the login flow itself is not under test.
package authtest

import (
	"net/http"
	"testing"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/handler/dto/request"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/cookie"
	"resort-booking/internal/pkg/jwt"
	"resort-booking/tests/common/dbtest"
	"resort-booking/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginStaff returns the access token from the login cookie.
func LoginStaff(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := httptest.Perform(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "login did not set %s", cookie.AccessTokenCookieName)
	require.NotEmpty(t, c.Value)
	return c.Value
}

// CreateAndLogin inserts an active staff member with dbtest.StaffPassword
// and signs them in.
func CreateAndLogin(t *testing.T, db dbtest.Executor, router http.Handler, email string, role staff.Role) string {
	t.Helper()
	dbtest.CreateTestStaff(t, db, email, role)
	return LoginStaff(t, router, email, dbtest.StaffPassword)
}

// JWTHelper mints tokens with the application's own secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	return h.issue(t, time.Now(), staffID, role)
}

// CreateExpiredToken issues a token that expired well before now, beyond
// any configured leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	return h.issue(t, time.Now().Add(-2*h.cfg.AccessTokenDuration-h.cfg.Leeway), staffID, role)
}

func (h *JWTHelper) issue(t *testing.T, at time.Time, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	svc := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, jwt.WithNow(func() time.Time { return at }))
	token, err := svc.GenerateAccessToken(staffID, role)
	require.NoError(t, err)
	return token
}
