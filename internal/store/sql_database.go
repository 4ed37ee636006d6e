package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/migrations"
)

// Dialect names the database/sql driver and the goose dialect of a store.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// Placeholder returns the squirrel placeholder format of the dialect.
func (d Dialect) Placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// DialectFromDSN picks the backend for dsn. URLs with a postgres scheme go to
// pgx; anything without a scheme (a file path or ":memory:") goes to SQLite.
func DialectFromDSN(dsn string) (Dialect, error) {
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return DialectSQLite, nil
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "file", "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	}
}

type DB struct {
	*sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.Placeholder()),
		logger:  log,
	}
}

// Connect opens the database named by dsn with the matching driver.
func Connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFromDSN(dsn)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, strings.TrimPrefix(strings.TrimPrefix(dsn, "sqlite3://"), "sqlite://"), log)
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}
