package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/models"
)

func clientCredentials(id, secret string) models.TokenRequest {
	return models.TokenRequest{GrantType: models.GrantTypeClientCredentials, ClientID: id, ClientSecret: secret}
}

func TestTokenIssuer_IssueAndAuthorize(t *testing.T) {
	issuer := NewTokenIssuer(config.ClientAuth{ClientID: "id", ClientSecret: "secret"}, logger.Nop())
	ctx := context.Background()

	token, err := issuer.IssueToken(ctx, clientCredentials("id", "secret"))
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(7200), token.ExpiresIn)
	assert.NotEmpty(t, token.AccessToken)

	assert.NoError(t, issuer.Authorize(ctx, token.AccessToken))
	assert.ErrorIs(t, issuer.Authorize(ctx, "unknown"), ErrInvalidAccessToken)
}

func TestTokenIssuer_Rejections(t *testing.T) {
	issuer := NewTokenIssuer(config.ClientAuth{ClientID: "id", ClientSecret: "secret"}, logger.Nop())
	ctx := context.Background()

	_, err := issuer.IssueToken(ctx, models.TokenRequest{GrantType: "password", ClientID: "id", ClientSecret: "secret"})
	assert.ErrorIs(t, err, ErrUnsupportedGrantType)

	_, err = issuer.IssueToken(ctx, clientCredentials("id", "wrong"))
	assert.ErrorIs(t, err, ErrInvalidClient)
}

func TestTokenIssuer_OpenWhenUnconfigured(t *testing.T) {
	issuer := NewTokenIssuer(config.ClientAuth{}, logger.Nop())

	_, err := issuer.IssueToken(context.Background(), clientCredentials("anyone", ""))
	assert.NoError(t, err)

	_, err = issuer.IssueToken(context.Background(), clientCredentials("", ""))
	assert.ErrorIs(t, err, ErrInvalidClient)
}

func TestTokenIssuer_ExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer(config.ClientAuth{}, logger.Nop()).(*tokenIssuer)
	issued := time.Unix(1_700_000_000, 0)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.IssueToken(context.Background(), clientCredentials("c", ""))
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(TokenLifetime) }
	assert.ErrorIs(t, issuer.Authorize(context.Background(), token.AccessToken), ErrInvalidAccessToken)
}

func TestNewAppInfoService(t *testing.T) {
	_, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "today", "abc"), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()).BuildVersion())
}
