package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func validConfig(t *testing.T) *Config {
	return &Config{
		Port:            "5000",
		DatabasePath:    "forum.db",
		Timezone:        "UTC",
		SessionLifetime: time.Hour,
		Admin: AdminConfig{
			Username:       "admin",
			PasswordHashes: []string{testHash(t, "secret")},
		},
	}
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "forum.db"))
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("SESSION_LIFETIME", "120")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD_HASHES", "hash-one, hash-two")
	t.Setenv("OIDC_DOMAIN", "")
	t.Setenv("TRACK_SECRET", "forum-shared")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, filepath.Join(dir, "forum.db"), cfg.DatabasePath)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, 2*time.Minute, cfg.SessionLifetime)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, []string{"hash-one", "hash-two"}, cfg.Admin.PasswordHashes)
	assert.Equal(t, "forum-shared", cfg.TrackSecret)
	assert.False(t, cfg.OIDCEnabled())
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD_HASHES", "")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.SessionLifetime)
	assert.Empty(t, cfg.Admin.PasswordHashes)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("ADMIN_USERNAME", "")
	os.Unsetenv("ADMIN_USERNAME")

	envFile := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ADMIN_USERNAME=moderator\n"), 0o600))

	cfg, err := Load(envFile, "")
	require.NoError(t, err)
	assert.Equal(t, "moderator", cfg.Admin.Username)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "port: \"9090\"\nadmin:\n  username: yamladmin\n  password_hashes:\n    - first\n    - second\n"
	configFile := filepath.Join(dir, "forumadmin.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(yaml), 0o600))

	cfg, err := Load("", configFile)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "yamladmin", cfg.Admin.Username)
	assert.Equal(t, []string{"first", "second"}, cfg.Admin.PasswordHashes)
}

func TestLoad_MissingNamedFilesFail(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := Load(filepath.Join(dir, "missing.env"), "")
	assert.Error(t, err)

	_, err = Load("", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty username", mutate: func(c *Config) { c.Admin.Username = " " }, wantErr: ErrAdminUsernameEmpty},
		{name: "no password", mutate: func(c *Config) { c.Admin.PasswordHashes = nil }, wantErr: ErrAdminPasswordMissing},
		{name: "plaintext password", mutate: func(c *Config) { c.Admin.PasswordHashes = []string{"admin123"} }, wantErr: ErrAdminPasswordHashBroken},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: ErrTimezoneInvalid},
		{name: "zero lifetime", mutate: func(c *Config) { c.SessionLifetime = 0 }, wantErr: ErrSessionLifetimeInvalid},
		{name: "partial oidc", mutate: func(c *Config) { c.OIDC.Domain = "https://id.example.com" }, wantErr: ErrOIDCIncomplete},
		{name: "complete oidc", mutate: func(c *Config) {
			c.OIDC = OIDCConfig{Domain: "https://id.example.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost/callback"}
			c.Admin.Email = "admin@example.com"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Timezone = "America/Sao_Paulo"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}
