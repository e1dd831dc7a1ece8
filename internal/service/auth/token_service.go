// Package auth provides token issuance/verification and password hashing.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
)

// TokenService defines operations for managing bearer tokens.
type TokenService interface {
	// Issue produces a signed token binding the user's identity.
	// Tokens carry no expiry; revocation goes through the session registry.
	Issue(ctx context.Context, user *domain.User) (string, error)

	// Verify validates the provided token string and extracts the claims.
	// Returns ErrMissingToken for an empty token, ErrMalformedToken when the
	// signature or encoding is invalid, and ErrInvalidClaims when the decoded
	// payload lacks a usable identity.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified payload of a bearer token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"id"`

	// Username is the user's handle at issuance time.
	Username string `json:"username"`
}
