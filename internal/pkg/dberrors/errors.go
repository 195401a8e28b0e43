package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation (23505) for a specific named constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if the error is any PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
