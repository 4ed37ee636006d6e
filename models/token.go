package models

import (
	"strings"
	"time"
)

// Token is an OAuth access token issued by the Ello API.
type Token struct {
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`

	// CreatedAt is the issue time in Unix seconds.
	CreatedAt int64 `json:"created_at"`
	// ExpiresIn is the lifetime in seconds counted from CreatedAt.
	ExpiresIn int64 `json:"expires_in"`

	// RefreshToken is only issued for user grants.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// IsZero reports whether t carries no access token.
func (t Token) IsZero() bool {
	return t.AccessToken == ""
}

// ExpiresAt returns the moment the token stops being valid.
func (t Token) ExpiresAt() time.Time {
	return time.Unix(t.CreatedAt+t.ExpiresIn, 0)
}

// ValidAt reports whether t can still be used at now. Comparison happens in
// whole seconds: a token is valid while created_at + expires_in > now.
func (t Token) ValidAt(now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.CreatedAt+t.ExpiresIn > now.Unix()
}

// Authorization returns the value of the Authorization header for t, with
// the token type capitalized ("bearer" becomes "Bearer").
func (t Token) Authorization() string {
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}
	return strings.ToUpper(tokenType[:1]) + tokenType[1:] + " " + t.AccessToken
}
