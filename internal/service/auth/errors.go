package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedToken indicates the token encoding or signature is invalid.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrInvalidClaims indicates the token verified but its payload lacks a
	// usable identity.
	ErrInvalidClaims = errors.New("token claims lack a usable identity")

	// ErrSessionRevoked indicates the token's session record is missing or
	// has been deactivated. Treated as a verification failure.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrAccountUnavailable indicates the token verified but the account it
	// names no longer exists or has been disabled.
	ErrAccountUnavailable = errors.New("account is unavailable")
)
