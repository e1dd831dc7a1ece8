// Package postgres implements the store interfaces over PostgreSQL.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phrazzld/bloglist-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the error code for unique constraint violations.
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the error code for foreign key violations.
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the error code for check constraint violations.
	checkViolationCode = "23514"

	// notNullViolationCode is the error code for not null violations.
	notNullViolationCode = "23502"

	// invalidTextRepresentationCode is the error code for cast failures,
	// e.g. a malformed uuid reaching a query parameter.
	invalidTextRepresentationCode = "22P02"
)

// The tables below are deliberately closed sets keyed on the constraint and
// column names the schema defines. Anything the tables do not name falls
// through to the generic sentinel for its kind; raw driver messages are
// never surfaced to callers.
var (
	uniqueConstraintErrors = map[string]error{
		"users_username_key": store.ErrUsernameExists,
	}

	notNullColumnErrors = map[string]error{
		"title": store.ErrTitleMissing,
		"url":   store.ErrURLMissing,
	}

	checkConstraintErrors = map[string]error{
		"blogs_year_check": store.ErrYearOutOfBounds,
	}
)

// MapError maps a database error to the appropriate store sentinel, wrapping
// the original error to preserve context for logging. Every database
// operation in this package routes its failures through here so the error
// taxonomy stays deterministic.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if mapped, ok := uniqueConstraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%w: %v", mapped, err)
			}
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case notNullViolationCode:
			if mapped, ok := notNullColumnErrors[pgErr.ColumnName]; ok {
				return fmt.Errorf("%w: %v", mapped, err)
			}
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		case checkViolationCode:
			if mapped, ok := checkConstraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%w: %v", mapped, err)
			}
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrOwnerMissing,
				pgErr.ConstraintName,
				err,
			)
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidID, err)
		}
	}

	return err
}

// CheckRowsAffected examines the number of rows affected by an operation.
// Zero affected rows on UPDATE and DELETE typically means the target record
// does not exist; the provided sentinel is returned in that case.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
