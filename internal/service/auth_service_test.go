package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/recruit-ops/internal/config"
	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

func newAuthTestService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	users := repository.NewMemoryUserRepository()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            bcrypt.MinCost,
	}}
	return NewAuthService(cfg, AuthDependencies{UserRepo: users}), users
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc, users := newAuthTestService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "", "Admin@Example.com", "correct-horse")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "Other", "admin@example.com", "another-pass")
	require.NoError(t, err)
	assert.False(t, created)

	user, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", user.Name)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	created, err = svc.EnsureAdmin(ctx, "", "nobody@example.com", "")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthTestService(t)
	ctx := context.Background()
	_, err := svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "correct-horse")
	require.NoError(t, err)

	user, token, meta, err := svc.Login(ctx, " ADMIN@example.com ", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, meta.SubjectID)
	assert.Equal(t, domain.RoleAdmin, meta.Role)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)

	tests := []struct {
		name     string
		email    string
		password string
		code     string
	}{
		{name: "wrong password", email: "admin@example.com", password: "nope-nope", code: "UNAUTHORIZED"},
		{name: "unknown user", email: "ghost@example.com", password: "correct-horse", code: "UNAUTHORIZED"},
		{name: "missing fields", email: "", password: "", code: "VALIDATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.ToDomainError(err).Code)
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc, users := newAuthTestService(t)
	ctx := context.Background()
	_, err := svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "correct-horse")
	require.NoError(t, err)
	admin, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, admin.ID, "correct-horse", "short")
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	err = svc.ChangePassword(ctx, admin.ID, "wrong-current", "battery-staple")
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.ChangePassword(ctx, admin.ID, "correct-horse", "battery-staple"))
	_, _, _, err = svc.Login(ctx, "admin@example.com", "battery-staple")
	assert.NoError(t, err)

	_, err = svc.Me(ctx, "missing")
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
