package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific not found errors wrap this sentinel.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a persistence-layer
	// constraint (not null, check, referential integrity). Check the wrapped
	// error for the specific field.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidID is returned when an identifier is syntactically invalid
	// for the backend's key type. Distinct from ErrNotFound.
	ErrInvalidID = errors.New("invalid id")

	// ErrAlreadyRead is returned when a reading list entry is marked read a
	// second time. Re-marking is rejected, not idempotent.
	ErrAlreadyRead = errors.New("entry already marked as read")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrBlogNotFound indicates that the requested blog does not exist in the store.
	ErrBlogNotFound = fmt.Errorf("%w: blog", ErrNotFound)

	// ErrReadingListEntryNotFound indicates that the requested reading list
	// entry does not exist in the store.
	ErrReadingListEntryNotFound = fmt.Errorf("%w: reading list entry", ErrNotFound)

	// ErrSessionNotFound indicates that no session exists for the presented token.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// Entity-specific constraint errors

	// ErrUsernameExists indicates that a user with the given username already
	// exists. Uniqueness is a first-class error kind, not a generic constraint.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrTitleMissing indicates the blogs.title not-null constraint fired.
	ErrTitleMissing = fmt.Errorf("%w: title", ErrInvalidEntity)

	// ErrURLMissing indicates the blogs.url not-null constraint fired.
	ErrURLMissing = fmt.Errorf("%w: url", ErrInvalidEntity)

	// ErrYearOutOfBounds indicates the blogs year check constraint fired.
	ErrYearOutOfBounds = fmt.Errorf("%w: year", ErrInvalidEntity)

	// ErrOwnerMissing indicates a foreign key violation on the owner
	// reference: every blog and reading list row must reference an existing user.
	ErrOwnerMissing = fmt.Errorf("%w: owner", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConstraintError checks if the error is any persistence-layer constraint
// violation, including duplicates.
func IsConstraintError(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidEntity)
}
