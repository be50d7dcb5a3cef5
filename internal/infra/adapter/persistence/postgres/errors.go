// Package postgres provides PostgreSQL implementations of the repository
// interfaces.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
)

// PostgreSQL SQLSTATE codes surfaced by constraint breaches.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// wrapErr wraps a driver error with the operation name. Unique and
// foreign-key violations are translated to entity.ErrConflict so the handler
// layer can map them to 409 without inspecting driver types.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, entity.ErrConflict, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
