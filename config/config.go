// Package config loads the admin panel's runtime configuration from an
// optional .env file, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config keys. Nested keys map to environment variables by replacing the
// dot with an underscore, so "admin.username" reads ADMIN_USERNAME.
const (
	keyPort            = "port"
	keyDatabasePath    = "database_path"
	keyTimezone        = "timezone"
	keyUseHTTPS        = "use_https"
	keySessionLifetime = "session_lifetime"
	keyLogLevel        = "log_level"
	keyRecordPanel     = "record_panel_views"
	keyTrackSecret     = "track_secret"
	keyAdminUsername   = "admin.username"
	keyAdminPasswords  = "admin.password_hashes"
	keyAdminEmail      = "admin.email"
	keyOIDCDomain      = "oidc.domain"
	keyOIDCClientID    = "oidc.client_id"
	keyOIDCSecret      = "oidc.client_secret"
	keyOIDCCallbackURL = "oidc.callback_url"
)

// Configuration errors returned by Validate
var (
	ErrAdminUsernameEmpty      = errors.New("admin username must not be empty")
	ErrAdminPasswordMissing    = errors.New("at least one admin password hash is required")
	ErrAdminPasswordHashBroken = errors.New("admin password hash is not a bcrypt hash")
	ErrTimezoneInvalid         = errors.New("unknown timezone")
	ErrSessionLifetimeInvalid  = errors.New("session lifetime must be positive")
	ErrOIDCIncomplete          = errors.New("oidc requires domain, client id, client secret, callback url and admin email")
)

// AdminConfig holds the single administrator's credentials. More than one
// password hash may be listed so a new password can be rolled out before
// the old one is removed.
type AdminConfig struct {
	Username       string
	PasswordHashes []string
	Email          string
}

// OIDCConfig holds optional OpenID Connect sign-on settings
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Config is the complete runtime configuration
type Config struct {
	Port            string
	DatabasePath    string
	Timezone        string
	UseHTTPS        bool
	SessionLifetime time.Duration
	LogLevel        string

	// RecordPanelViews adds the panel's own page views to the access log
	RecordPanelViews bool
	// TrackSecret, when set, must accompany every page view the forum reports
	TrackSecret string

	Admin AdminConfig
	OIDC  OIDCConfig
}

// OIDCEnabled reports whether single sign-on is configured
func (c *Config) OIDCEnabled() bool {
	return c.OIDC.Domain != ""
}

// Location resolves the configured time zone. An empty zone means the
// process's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrTimezoneInvalid, c.Timezone, err)
	}
	return loc, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Admin.Username) == "" {
		return ErrAdminUsernameEmpty
	}
	if len(c.Admin.PasswordHashes) == 0 {
		return ErrAdminPasswordMissing
	}
	for _, hash := range c.Admin.PasswordHashes {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return ErrAdminPasswordHashBroken
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.SessionLifetime <= 0 {
		return ErrSessionLifetimeInvalid
	}
	if c.OIDCEnabled() {
		if c.OIDC.ClientID == "" || c.OIDC.ClientSecret == "" || c.OIDC.CallbackURL == "" || c.Admin.Email == "" {
			return ErrOIDCIncomplete
		}
	}
	return nil
}

// Load reads configuration. envFile and configFile are both optional; a
// missing file is not an error unless it was named explicitly.
func Load(envFile, configFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(keyPort, "5000")
	v.SetDefault(keyDatabasePath, "forum.db")
	v.SetDefault(keyTimezone, "")
	v.SetDefault(keyUseHTTPS, false)
	v.SetDefault(keySessionLifetime, 3600)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyRecordPanel, false)
	v.SetDefault(keyTrackSecret, "")
	v.SetDefault(keyAdminUsername, "admin")
	v.SetDefault(keyAdminPasswords, "")
	v.SetDefault(keyAdminEmail, "")
	v.SetDefault(keyOIDCDomain, "")
	v.SetDefault(keyOIDCClientID, "")
	v.SetDefault(keyOIDCSecret, "")
	v.SetDefault(keyOIDCCallbackURL, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("forumadmin")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:             v.GetString(keyPort),
		DatabasePath:     v.GetString(keyDatabasePath),
		Timezone:         v.GetString(keyTimezone),
		UseHTTPS:         v.GetBool(keyUseHTTPS),
		SessionLifetime:  time.Duration(v.GetInt(keySessionLifetime)) * time.Second,
		LogLevel:         v.GetString(keyLogLevel),
		RecordPanelViews: v.GetBool(keyRecordPanel),
		TrackSecret:      v.GetString(keyTrackSecret),
		Admin: AdminConfig{
			Username:       v.GetString(keyAdminUsername),
			PasswordHashes: passwordHashes(v),
			Email:          v.GetString(keyAdminEmail),
		},
		OIDC: OIDCConfig{
			Domain:       v.GetString(keyOIDCDomain),
			ClientID:     v.GetString(keyOIDCClientID),
			ClientSecret: v.GetString(keyOIDCSecret),
			CallbackURL:  v.GetString(keyOIDCCallbackURL),
		},
	}

	return cfg, nil
}

// loadEnvFile loads variables from a .env file without overriding ones
// already set in the environment
func loadEnvFile(envFile string) error {
	path := envFile
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if envFile == "" && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// passwordHashes accepts either a YAML list or a comma separated string
func passwordHashes(v *viper.Viper) []string {
	var raw []string
	if s := v.GetString(keyAdminPasswords); s != "" {
		raw = strings.Split(s, ",")
	} else {
		raw = v.GetStringSlice(keyAdminPasswords)
	}

	hashes := make([]string, 0, len(raw))
	for _, h := range raw {
		if h = strings.TrimSpace(h); h != "" {
			hashes = append(hashes, h)
		}
	}
	return hashes
}
