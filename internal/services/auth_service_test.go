package services_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive_backend/internal/config"
	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLMin = 15
	cfg.JWT.RefreshTTLDays = 7
	config.AppConfig = cfg

	os.Exit(m.Run())
}

func TestAuthService_LoginUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "aidana")

	resp, err := env.authService.Login(&dto.LoginRequest{
		Login:    "aidana",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.ActorID)
	assert.Equal(t, "USER", resp.Role)

	// Email works as the login too.
	resp, err = env.authService.Login(&dto.LoginRequest{
		Login:    "aidana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ActorID)
}

func TestAuthService_LoginHelper(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	helper := env.createHelper(t, "bekzat")

	resp, err := env.authService.Login(&dto.LoginRequest{
		Login:    "bekzat",
		Password: "password123",
		IsHelper: true,
	})
	require.NoError(t, err)

	assert.Equal(t, helper.ID, resp.ActorID)
	assert.Equal(t, "HELPER", resp.Role)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser(t, "aidana")

	cases := []dto.LoginRequest{
		{Login: "aidana", Password: "wrong-password"},
		{Login: "nobody", Password: "password123"},
		{Login: "aidana", Password: "password123", IsHelper: true},
	}
	for _, req := range cases {
		_, err := env.authService.Login(&req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "login=%s helper=%v", req.Login, req.IsHelper)
	}
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser(t, "aidana")

	login, err := env.authService.Login(&dto.LoginRequest{Login: "aidana", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := env.authService.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.ActorID, refreshed.ActorID)

	// The old token was revoked by rotation.
	_, err = env.authService.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.authService.Refresh(&dto.RefreshRequest{RefreshToken: "not-a-jwt"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser(t, "aidana")

	login, err := env.authService.Login(&dto.LoginRequest{Login: "aidana", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, env.authService.Logout(&dto.LogoutRequest{RefreshToken: login.RefreshToken}))

	_, err = env.authService.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)

	// Logging out an already revoked token is harmless.
	require.NoError(t, env.authService.Logout(&dto.LogoutRequest{RefreshToken: login.RefreshToken}))
}

func TestAuthService_LogoutAll(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser(t, "aidana")

	first, err := env.authService.Login(&dto.LoginRequest{Login: "aidana", Password: "password123"})
	require.NoError(t, err)
	second, err := env.authService.Login(&dto.LoginRequest{Login: "aidana", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, env.authService.LogoutAll(first.ActorID))

	for _, token := range []string{first.RefreshToken, second.RefreshToken} {
		_, err := env.authService.Refresh(&dto.RefreshRequest{RefreshToken: token})
		assert.Error(t, err)
	}
}
