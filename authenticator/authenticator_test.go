package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenIDConfigValidate(t *testing.T) {
	full := OpenIDConfig{
		Domain:       "id.example.com",
		ClientID:     "client",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:5000/callback",
	}
	assert.NoError(t, full.Validate())

	tests := []struct {
		name   string
		mutate func(*OpenIDConfig)
		want   string
	}{
		{name: "domain", mutate: func(c *OpenIDConfig) { c.Domain = "" }, want: "domain is required"},
		{name: "client id", mutate: func(c *OpenIDConfig) { c.ClientID = "" }, want: "client ID is required"},
		{name: "client secret", mutate: func(c *OpenIDConfig) { c.ClientSecret = "" }, want: "client secret is required"},
		{name: "callback", mutate: func(c *OpenIDConfig) { c.CallbackURL = "" }, want: "callback URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full
			tt.mutate(&cfg)

			provider, err := NewOpenIDProvider(context.Background(), cfg)
			assert.Nil(t, provider)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestIssuerURL(t *testing.T) {
	assert.Equal(t, "https://id.example.com/", OpenIDConfig{Domain: "id.example.com"}.IssuerURL())
	assert.Equal(t, "http://localhost:8080/realms/forum", OpenIDConfig{Domain: "http://localhost:8080/realms/forum"}.IssuerURL())
}

func TestClaimsEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", Claims{"email": "admin@example.com", "email_verified": true}.Email())
	assert.Equal(t, "admin@example.com", Claims{"email": " admin@example.com "}.Email())
	assert.Empty(t, Claims{"email": "admin@example.com", "email_verified": false}.Email())
	assert.Empty(t, Claims{"sub": "123"}.Email())
}
