// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation covers validation failures no specific sentinel names.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUserID is returned when an entity is missing its user reference.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrUsernameTooShort is returned when a username is shorter than 3 characters.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")

	// ErrInvalidUsername is returned when a username is not a valid address.
	ErrInvalidUsername = errors.New("username must be a valid email address")

	// ErrPasswordTooShort is returned when a password is shorter than 3 characters.
	ErrPasswordTooShort = errors.New("password must be at least 3 characters long")

	// ErrEmptyPassword is returned when no password or hash is present.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrTitleRequired is returned when a blog has no title.
	ErrTitleRequired = errors.New("title is required")

	// ErrURLRequired is returned when a blog has no url.
	ErrURLRequired = errors.New("url is required")

	// ErrYearOutOfRange is returned when a blog year is outside 1991..current year.
	ErrYearOutOfRange = errors.New("year must be between 1991 and the current year")

	// ErrEmptyBlogID is returned when a reading list entry is missing its blog reference.
	ErrEmptyBlogID = errors.New("blog ID cannot be empty")

	// ErrEmptyToken is returned when a session has no token string.
	ErrEmptyToken = errors.New("token cannot be empty")
)

// IsValidationError reports whether err is any domain validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUsernameTooShort) ||
		errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrEmptyPassword) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrURLRequired) ||
		errors.Is(err, ErrYearOutOfRange) ||
		errors.Is(err, ErrEmptyUserID) ||
		errors.Is(err, ErrEmptyBlogID) ||
		errors.Is(err, ErrEmptyToken)
}
