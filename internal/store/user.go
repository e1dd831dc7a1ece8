package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Uniqueness of the username is enforced by the store's
	// atomic constraint, not by a read-check-write pattern.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their unique username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users together with summaries of the blogs they own.
	List(ctx context.Context) ([]*domain.UserWithBlogs, error)
}
