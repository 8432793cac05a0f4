package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/migrations"
	"github.com/Masterminds/squirrel"
)

// Dialect names a supported SQL backend. Its value doubles as the goose
// dialect and the migrations subdirectory.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
	DialectMySQL    Dialect = "mysql"
)

// DB wraps *sql.DB with the dialect-specific pieces every repository needs:
// a squirrel statement builder with the right placeholder format and an
// error classifier for the driver in use.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if dialect == DialectPostgres {
		placeholder = squirrel.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// NewConnect opens the SQL backend selected by the DSN scheme.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "mysql://"):
		return NewConnectMySQL(ctx, strings.TrimPrefix(dsn, "mysql://"), log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

// withRetry runs op and repeats it once when the first failure is classified
// [Retryable] and ctx is still live.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	if db.errorClassificator.Classify(err) == Retryable && ctx.Err() == nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.withRetry").Msg("retrying after transient database error")
		return op()
	}

	return err
}
