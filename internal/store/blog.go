package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
)

// BlogStore defines the interface for blog data persistence.
type BlogStore interface {
	// Create saves a new blog to the store.
	// Returns ErrOwnerMissing if the owning user does not exist.
	Create(ctx context.Context, blog *domain.Blog) error

	// GetByID retrieves a blog by its unique ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)

	// List returns all blogs with their owner summaries, ordered by likes
	// descending. When search is non-empty, results are restricted to blogs
	// whose title or author contains it, case-insensitively.
	List(ctx context.Context, search string) ([]*domain.BlogWithOwner, error)

	// UpdateLikes sets the like count of a blog and returns the updated row.
	// Returns ErrBlogNotFound if the blog does not exist.
	UpdateLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error)

	// Delete removes a blog from the store.
	// Returns ErrBlogNotFound if the blog does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAuthors aggregates blog and like counts per author, ordered by
	// total likes descending. Blogs without an author are excluded.
	ListAuthors(ctx context.Context) ([]*domain.AuthorStats, error)
}
