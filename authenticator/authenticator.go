package authenticator

import (
	"context"
	"strings"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Email returns the verified email claim, or "" when the provider did not
// vouch for it
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	if verified, ok := c["email_verified"].(bool); ok && !verified {
		return ""
	}
	return strings.TrimSpace(email)
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
