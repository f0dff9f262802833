package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 15)

	raw, meta, err := tm.GenerateToken("user-1", domain.RoleRecruiter)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), meta.ExpiresAt, 5*time.Second)

	claims, err := tm.ParseToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleRecruiter, claims.Role)
}

func TestParseTokenRejectsExpiredAndForeign(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	raw, _, err := tm.GenerateToken("user-1", domain.RoleAdmin)
	require.NoError(t, err)

	tm.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tm.ParseToken(raw)
	assert.Error(t, err)

	other := NewTokenManager("other-secret", 1)
	_, err = other.ParseToken(raw)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("short", 4)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := HashPassword("long-enough", 4)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "long-enough"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}

func newProtectedApp(t *testing.T, roles ...domain.Role) (*fiber.App, *TokenManager, repository.UserRepository) {
	t.Helper()
	tm := NewTokenManager("secret", 15)
	users := repository.NewMemoryUserRepository()
	mw := NewAuthMiddleware(tm, users)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	app.Get("/private", mw.Handle, RequireRole(roles...), func(c *fiber.Ctx) error {
		p, _ := PrincipalFromContext(c)
		return c.SendString(p.User.Email)
	})
	return app, tm, users
}

func TestAuthMiddleware(t *testing.T) {
	app, tm, users := newProtectedApp(t, domain.RoleAdmin, domain.RoleRecruiter)

	viewer := &domain.User{Email: "viewer@example.com", Role: domain.RoleViewer}
	admin := &domain.User{Email: "admin@example.com", Role: domain.RoleAdmin}
	require.NoError(t, users.Create(context.Background(), viewer))
	require.NoError(t, users.Create(context.Background(), admin))

	adminToken, _, err := tm.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)
	viewerToken, _, err := tm.GenerateToken(viewer.ID, viewer.Role)
	require.NoError(t, err)
	ghostToken, _, err := tm.GenerateToken("ghost", domain.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"unknown user", "Bearer " + ghostToken, http.StatusUnauthorized},
		{"insufficient role", "Bearer " + viewerToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
