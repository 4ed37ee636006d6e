package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/utils"
	"github.com/jasvilladarez/ello-go/models"
)

const (
	// TokenLifetime is the expires_in of issued tokens.
	TokenLifetime   = 2 * time.Hour
	maxIssuedTokens = 1024
)

type tokenIssuer struct {
	auth   config.ClientAuth
	tokens *expirable.LRU[string, models.Token]
	ids    *utils.UUIDGenerator
	now    func() time.Time

	logger *logger.Logger
}

// NewTokenIssuer creates an in-memory issuer of client credentials tokens.
// Issued tokens are forgotten once they expire or when more than
// maxIssuedTokens are alive.
func NewTokenIssuer(auth config.ClientAuth, log *logger.Logger) TokenIssuer {
	return &tokenIssuer{
		auth:   auth,
		tokens: expirable.NewLRU[string, models.Token](maxIssuedTokens, nil, TokenLifetime),
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}
}

func (s *tokenIssuer) IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	if req.GrantType != models.GrantTypeClientCredentials {
		return models.Token{}, ErrUnsupportedGrantType
	}
	if !s.clientAllowed(req.ClientID, req.ClientSecret) {
		return models.Token{}, ErrInvalidClient
	}

	token := models.Token{
		TokenType:   "bearer",
		AccessToken: s.ids.Generate(),
		CreatedAt:   s.now().Unix(),
		ExpiresIn:   int64(TokenLifetime / time.Second),
	}
	s.tokens.Add(token.AccessToken, token)

	logger.FromContext(ctx).Debug().Str("client_id", req.ClientID).Msg("public token issued")
	return token, nil
}

func (s *tokenIssuer) Authorize(_ context.Context, accessToken string) error {
	token, ok := s.tokens.Get(accessToken)
	if !ok || !token.ValidAt(s.now()) {
		return ErrInvalidAccessToken
	}
	return nil
}

func (s *tokenIssuer) clientAllowed(id, secret string) bool {
	if s.auth.ClientID == "" && s.auth.ClientSecret == "" {
		return id != ""
	}
	return subtle.ConstantTimeCompare([]byte(id), []byte(s.auth.ClientID)) == 1 &&
		subtle.ConstantTimeCompare([]byte(secret), []byte(s.auth.ClientSecret)) == 1
}
