package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/models"
)

// tokenRepository is the SQL implementation of [TokenRepository] over the
// "tokens" table.
type tokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTokenRepository constructs a [TokenRepository] backed by db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetToken loads the single stored token. [sql.ErrNoRows] is reported as
// [ErrTokenNotFound].
func (r *tokenRepository) GetToken(ctx context.Context) (models.Token, error) {
	query, args, err := r.db.builder.
		Select(colTokenType, colAccessToken, colRefreshToken, colCreatedAt, colExpiresIn).
		From(tokensTable).
		Where(sq.Eq{colID: tokenRowID}).
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.Token
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&token.TokenType, &token.AccessToken, &token.RefreshToken, &token.CreatedAt, &token.ExpiresIn)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Token{}, ErrTokenNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*tokenRepository.GetToken").Msg("error scanning token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// SaveToken upserts the token row.
func (r *tokenRepository) SaveToken(ctx context.Context, token models.Token) error {
	query, args, err := r.db.builder.
		Insert(tokensTable).
		Columns(colID, colTokenType, colAccessToken, colRefreshToken, colCreatedAt, colExpiresIn).
		Values(tokenRowID, token.TokenType, token.AccessToken, token.RefreshToken, token.CreatedAt, token.ExpiresIn).
		Suffix(upsertTokenSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*tokenRepository.SaveToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteToken removes the token row if present.
func (r *tokenRepository) DeleteToken(ctx context.Context) error {
	query, args, err := r.db.builder.
		Delete(tokensTable).
		Where(sq.Eq{colID: tokenRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*tokenRepository.DeleteToken").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
