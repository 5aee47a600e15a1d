package postgres

import (
	"context"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/infra/persistence"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, pgCheckViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isTimeout covers both our own deadline and server-side statement timeouts.
func isTimeout(ctx context.Context, err error) bool {
	return persistence.DeadlineExceeded(ctx, err) || pgconn.Timeout(err)
}

// storeError maps a driver error to a timeout or a generic database error.
func storeError(ctx context.Context, err error, op string) error {
	if isTimeout(ctx, err) {
		return persistence.TimeoutError(op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}
