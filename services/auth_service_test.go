package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/forum-admin/config"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate(t *testing.T) {
	auth := NewAuthService(config.AdminConfig{
		Username:       "admin",
		PasswordHashes: []string{mustHash(t, "old-password"), mustHash(t, "new-password")},
	})

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "current password", username: "admin", password: "new-password", want: true},
		{name: "rotated out password still listed", username: "admin", password: "old-password", want: true},
		{name: "wrong password", username: "admin", password: "admin123", want: false},
		{name: "wrong username", username: "root", password: "new-password", want: false},
		{name: "empty password", username: "admin", password: "", want: false},
		{name: "empty username", username: "", password: "new-password", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.Authenticate(tt.username, tt.password))
		})
	}
}

func TestAuthenticate_NoHashesConfigured(t *testing.T) {
	auth := NewAuthService(config.AdminConfig{Username: "admin"})
	assert.False(t, auth.Authenticate("admin", "anything"))
}

func TestAllowsEmail(t *testing.T) {
	auth := NewAuthService(config.AdminConfig{Username: "admin", Email: "admin@example.com"})

	assert.True(t, auth.AllowsEmail("Admin@Example.com"))
	assert.False(t, auth.AllowsEmail("someone@example.com"))
	assert.False(t, auth.AllowsEmail(""))

	noEmail := NewAuthService(config.AdminConfig{Username: "admin"})
	assert.False(t, noEmail.AllowsEmail("admin@example.com"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrValidation)
}
