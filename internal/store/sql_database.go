package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/migrations"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]. It
// tells repositories how a failed statement should be reported.
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures (lost connections, deadlocks,
	// busy databases). Nothing retries automatically; the flag is logged.
	Retryable

	// UniqueViolation marks a uniqueness constraint failure. Repositories
	// report it as [ErrAlreadyExists].
	UniqueViolation
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a SQL connection pool bound to one dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	builder            sq.StatementBuilderType
	dialect            string
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: classificator,
		logger:             log,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		dialect:            dialect,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// writeError converts a failed write into a repository error.
func (db *DB) writeError(err error) error {
	switch db.classify(err) {
	case UniqueViolation:
		return ErrAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// rollback aborts tx, logging any failure other than an already finished
// transaction.
func (db *DB) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		logger.FromContext(ctx).Err(err).Msg("error rolling back transaction")
	}
}
