package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_ValidAt(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		now   time.Time
		want  bool
	}{
		{
			name:  "active token",
			token: Token{TokenType: "bearer", AccessToken: "Test token", CreatedAt: 1517363305, ExpiresIn: 86400},
			now:   time.UnixMilli(1517363400000),
			want:  true,
		},
		{
			name:  "expired token",
			token: Token{TokenType: "bearer", AccessToken: "Expired token", CreatedAt: 123456, ExpiresIn: 10},
			now:   time.UnixMilli(1234567000),
			want:  false,
		},
		{
			name:  "expires exactly now",
			token: Token{AccessToken: "edge", CreatedAt: 100, ExpiresIn: 10},
			now:   time.Unix(110, 0),
			want:  false,
		},
		{
			name:  "empty token",
			token: Token{CreatedAt: 1 << 40, ExpiresIn: 10},
			now:   time.Unix(0, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.ValidAt(tt.now))
		})
	}
}

func TestToken_Authorization(t *testing.T) {
	assert.Equal(t, "Bearer abc", Token{TokenType: "bearer", AccessToken: "abc"}.Authorization())
	assert.Equal(t, "Bearer abc", Token{AccessToken: "abc"}.Authorization())
}

func TestImage_BestURL(t *testing.T) {
	var nilImage *Image
	assert.Empty(t, nilImage.BestURL())

	img := &Image{Original: &ImageVersion{URL: "orig"}, Regular: &ImageVersion{URL: "regular"}}
	assert.Equal(t, "regular", img.BestURL())
	assert.Equal(t, "orig", img.OriginalURL())
}
