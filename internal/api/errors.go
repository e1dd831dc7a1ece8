package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/service/authz"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// Fixed client-facing error messages. These are part of the observable
// contract and must not drift when the backend changes.
const (
	MsgInvalidCredentials = "invalid credentials"
	MsgAccountDisabled    = "account disabled"
	MsgTokenMissing       = "token missing"
	MsgTokenInvalid       = "token invalid"
	MsgMalformedID        = "malformed id"
	MsgBlogNotFound       = "Blog not found"
	MsgUserNotFound       = "User not found"
	MsgNoDeletePermission = "No permission to delete this blog"
	MsgNoListPermission   = "No permission to add to this reading list"
	MsgNotOnReadingList   = "Only blogs on your reading list can be marked as read"
	MsgAlreadyRead        = "This blog is already marked as read"
	MsgUnknownEndpoint    = "unknown endpoint"
	MsgUnexpected         = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error kind. The statuses follow the original route contract exactly:
// constraint violations are 400, never 409; ownership denial on blog
// deletion is 401, not 403.
func MapErrorToStatusCode(err error) int {
	switch {
	// Token and account failures
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrSessionRevoked),
		errors.Is(err, auth.ErrAccountUnavailable):
		return http.StatusUnauthorized

	// Ownership failures (blog routes; the reading list route overrides to 403)
	case errors.Is(err, authz.ErrNotOwner):
		return http.StatusUnauthorized

	// Not found
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Constraint violations and malformed input
	case store.IsConstraintError(err),
		errors.Is(err, store.ErrAlreadyRead),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidID),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	// Closed default: anything unclassified is an internal error.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed, user-facing message for an error.
// Raw backend text never reaches a client; anything the table does not name
// collapses to the generic message for its kind.
func GetSafeErrorMessage(err error) string {
	switch {
	// Token and account failures
	case errors.Is(err, auth.ErrMissingToken):
		return MsgTokenMissing
	case errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrSessionRevoked):
		return MsgTokenInvalid
	case errors.Is(err, auth.ErrAccountUnavailable):
		return MsgAccountDisabled

	// Ownership failures
	case errors.Is(err, authz.ErrNotOwner):
		return MsgNoDeletePermission

	// Uniqueness: a first-class kind with a fixed message
	case errors.Is(err, store.ErrUsernameExists):
		return "username must be unique"

	// Field-level constraint violations, keyed by the closed store table
	case errors.Is(err, store.ErrTitleMissing), errors.Is(err, domain.ErrTitleRequired):
		return "Validation error: The title field is required"
	case errors.Is(err, store.ErrURLMissing), errors.Is(err, domain.ErrURLRequired):
		return "Validation error: The url field is required"
	case errors.Is(err, store.ErrYearOutOfBounds), errors.Is(err, domain.ErrYearOutOfRange):
		return "Validation error: The year must be between 1991 and the current year"
	case errors.Is(err, store.ErrOwnerMissing):
		return "Validation error: owner does not exist"

	// Domain validation performed before the store is reached
	case errors.Is(err, domain.ErrUsernameTooShort):
		return "username must be at least 3 characters long"
	case errors.Is(err, domain.ErrInvalidUsername):
		return "username must be a valid email address"
	case errors.Is(err, domain.ErrPasswordTooShort), errors.Is(err, domain.ErrEmptyPassword):
		return "password must be at least 3 characters long"

	// Identifier and state failures
	case errors.Is(err, store.ErrInvalidID), errors.Is(err, domain.ErrInvalidID):
		return MsgMalformedID
	case errors.Is(err, store.ErrAlreadyRead):
		return MsgAlreadyRead

	// Not found
	case errors.Is(err, store.ErrBlogNotFound):
		return MsgBlogNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case store.IsNotFoundError(err):
		return "not found"

	// Generic per-kind fallbacks for unmatched constraint detail
	case errors.Is(err, store.ErrDuplicate):
		return "duplicate value"
	case errors.Is(err, store.ErrInvalidEntity), domain.IsValidationError(err):
		return "Validation error: invalid data"

	default:
		return MsgUnexpected
	}
}

// HandleAPIError is the terminal step of the request state machine: every
// failure raised upstream funnels through here and becomes exactly one
// (status, message) response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(
		w,
		r,
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err),
		err,
	)
}
