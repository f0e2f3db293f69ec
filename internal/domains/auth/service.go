package auth

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"masterdata-backend/internal/config"
	"masterdata-backend/pkg/jwt"
)

// ErrInvalidCredentials is returned for any username or password
// mismatch; the two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service authenticates the configured admin account and issues
// access tokens.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

type authService struct {
	admin      config.AdminConfig
	tokens     *jwt.Manager
	expirySecs int
}

// NewAuthService creates the auth service. The admin credentials come
// from configuration; there is no user table.
func NewAuthService(admin config.AdminConfig, tokens *jwt.Manager, expiryMinutes int) Service {
	return &authService{
		admin:      admin,
		tokens:     tokens,
		expirySecs: expiryMinutes * 60,
	}
}

func (s *authService) Login(_ context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Username != s.admin.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(req.Username, "admin")
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.expirySecs,
	}, nil
}

// GetErrorResponse maps an auth error to an HTTP status, message and code.
func GetErrorResponse(err error) (int, string, string) {
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS"
	}
	return http.StatusBadRequest, err.Error(), "VALIDATION_FAILED"
}
