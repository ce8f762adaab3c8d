package services

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/forum-admin/config"
)

// AuthService interface defines administrator authentication
type AuthService interface {
	Authenticate(username, password string) bool
	AllowsEmail(email string) bool
	Username() string
}

// authService implements AuthService interface against the configured
// administrator account
type authService struct {
	admin config.AdminConfig
}

// NewAuthService creates a new auth service
func NewAuthService(admin config.AdminConfig) AuthService {
	return &authService{admin: admin}
}

// Authenticate checks the credentials against the configured username and
// every configured password hash
func (s *authService) Authenticate(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1

	passwordOK := false
	for _, hash := range s.admin.PasswordHashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
			passwordOK = true
			break
		}
	}

	return userOK && passwordOK
}

// AllowsEmail reports whether an identity provider email belongs to the
// administrator
func (s *authService) AllowsEmail(email string) bool {
	if s.admin.Email == "" || email == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(email), s.admin.Email)
}

// Username returns the administrator's login name
func (s *authService) Username() string {
	return s.admin.Username
}

// HashPassword produces a bcrypt hash suitable for the admin configuration
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}
