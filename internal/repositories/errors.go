package repositories

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-notes/internal/apperrors"
)

// PostgreSQL SQLSTATE codes translated into error kinds.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// constraintError translates constraint violations raised by the store into
// classified errors. An empty message leaves that violation untranslated.
func constraintError(err error, onUnique, onForeignKey string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if onUnique != "" {
			return apperrors.Conflict(onUnique).WithCause(err)
		}
	case pgForeignKeyViolation:
		if onForeignKey != "" {
			return apperrors.NotFound(onForeignKey).WithCause(err)
		}
	case pgCheckViolation:
		return apperrors.Invalid("constraint %s violated", pgErr.ConstraintName).WithCause(err)
	}
	return err
}

// notFound maps sql.ErrNoRows to a NotFound error with msg.
func notFound(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(msg)
	}
	return err
}
