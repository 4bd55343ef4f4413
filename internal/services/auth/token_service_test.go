// filepath: internal/services/auth/token_service_test.go
package auth_test

import (
	"path/filepath"
	"riseup/internal/config"
	"riseup/internal/db/migrations"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/services"
	"riseup/internal/services/auth"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-key-for-testing"

// setupServiceTest creates a temporary database, repository, user service, and token service.
func setupServiceTest(t *testing.T) (*repository.Repository, services.UserService, auth.TokenService, *models.User) {
	t.Helper()

	testCfg := &config.Config{
		Database:        config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test_token_service.db")},
		JWTSecret:       testSecret,
		AccessDuration:  5 * time.Minute,
		RefreshDuration: 24 * time.Hour,
	}

	repo, err := repository.NewRepository(testCfg)
	if err != nil {
		t.Fatalf("Failed to create repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	userSvc := services.NewUserService(repo)
	tokenSvc := auth.NewTokenService(testCfg, userSvc, repo)

	user, err := userSvc.Register(repository.UserCreateArgs{Username: "tokenuser", Password: "password123"})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return repo, userSvc, tokenSvc, user
}

func signed(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestGenerateAndValidate(t *testing.T) {
	_, _, tokens, user := setupServiceTest(t)

	access, refresh, err := tokens.GenerateTokens(user)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEqual(t, access, refresh)

	got, err := tokens.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = tokens.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	// Two pairs issued in the same second must both be storable.
	_, refresh2, err := tokens.GenerateTokens(user)
	require.NoError(t, err)
	assert.NotEqual(t, refresh, refresh2)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	_, _, tokens, user := setupServiceTest(t)
	sub := strconv.FormatInt(user.ID, 10)

	type claims struct {
		Username string `json:"username"`
		jwt.RegisteredClaims
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", signed(t, &claims{Username: user.Username, RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "riseup", Subject: sub, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}, "other-secret")},
		{"expired", signed(t, &claims{Username: user.Username, RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "riseup", Subject: sub, ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}}, testSecret)},
		{"wrong issuer", signed(t, &claims{Username: user.Username, RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "someone-else", Subject: sub, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}, testSecret)},
		{"unknown user", signed(t, &claims{Username: "ghost", RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "riseup", Subject: sub, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}, testSecret)},
		{"subject mismatch", signed(t, &claims{Username: user.Username, RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "riseup", Subject: "999", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}, testSecret)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tokens.ValidateAccessToken(tc.token)
			assert.Error(t, err)
		})
	}

	t.Run("expired reports jwt.ErrTokenExpired", func(t *testing.T) {
		_, err := tokens.ValidateAccessToken(tests[2].token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}

func TestRefreshRotation(t *testing.T) {
	_, _, tokens, user := setupServiceTest(t)

	_, refresh, err := tokens.GenerateTokens(user)
	require.NoError(t, err)

	access2, refresh2, err := tokens.Refresh(refresh)
	require.NoError(t, err)
	assert.NotEqual(t, refresh, refresh2)

	_, err = tokens.ValidateAccessToken(access2)
	assert.NoError(t, err)

	_, _, err = tokens.Refresh(refresh)
	assert.Error(t, err, "a rotated refresh token cannot be reused")

	_, err = tokens.ValidateRefreshToken(refresh2)
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	_, _, tokens, user := setupServiceTest(t)

	_, refresh, err := tokens.GenerateTokens(user)
	require.NoError(t, err)

	require.NoError(t, tokens.Logout(refresh))
	_, err = tokens.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestRefreshToken_AccessTokenIsNotAccepted(t *testing.T) {
	_, _, tokens, user := setupServiceTest(t)

	access, _, err := tokens.GenerateTokens(user)
	require.NoError(t, err)

	_, err = tokens.ValidateRefreshToken(access)
	assert.Error(t, err, "access tokens are never stored")
}

func TestGenerateSecret(t *testing.T) {
	a, err := auth.GenerateSecret()
	require.NoError(t, err)
	b, err := auth.GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
