package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"masterdata-backend/internal/config"
	"masterdata-backend/pkg/jwt"
)

func newTestService(t *testing.T, password string) Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}
	return NewAuthService(admin, jwt.NewManager("test-secret", 15), 15)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestService(t, "s3cret")

	got, err := svc.Login(context.Background(), &LoginRequest{
		Username: "admin",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, 15*60, got.ExpiresIn)

	claims, err := jwt.NewManager("test-secret", 15).Validate(got.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t, "s3cret")

	_, err := svc.Login(context.Background(), &LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	svc := newTestService(t, "s3cret")

	_, err := svc.Login(context.Background(), &LoginRequest{
		Username: "root",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsEmptyPayload(t *testing.T) {
	svc := newTestService(t, "s3cret")

	_, err := svc.Login(context.Background(), &LoginRequest{})
	assert.Error(t, err)
}
