package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sitetive/forms-backend/internal/config"
	"github.com/sitetive/forms-backend/internal/models"
	"github.com/sitetive/forms-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     24 * time.Hour,
		AdminUsername: "admin",
		AdminPassword: "bootstrap-password",
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("hunter2")
	require.NoError(t, err)
	second, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password must hash to distinct stored strings")

	for _, stored := range []string{first, second} {
		ok, err := VerifyPassword("hunter2", stored)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	stored, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := VerifyPassword("battery staple", stored)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-valid-stored-hash")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	users := repository.NewMemoryUsers()
	svc := NewAuthService(users, testConfig())

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &models.User{
		Username: "admin",
		Password: hash,
	}))

	token, user, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEmpty(t, token)

	// The token must carry the account identity and round-trip with the
	// shared secret.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["id"])
	assert.Equal(t, "admin", claims["username"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := repository.NewMemoryUsers()
	svc := NewAuthService(users, testConfig())

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &models.User{
		Username: "admin",
		Password: hash,
	}))

	_, _, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	users := repository.NewMemoryUsers()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	first, err := users.ByUsername(context.Background(), "admin")
	require.NoError(t, err)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	second, err := users.ByUsername(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "bootstrap must not create a second account")

	ok, err := VerifyPassword("bootstrap-password", second.Password)
	require.NoError(t, err)
	assert.True(t, ok)
}
