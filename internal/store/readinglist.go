package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
)

// ReadingListStore defines the interface for reading list persistence.
type ReadingListStore interface {
	// Create saves a new reading list entry.
	// Returns ErrOwnerMissing if the user or blog reference does not exist.
	Create(ctx context.Context, entry *domain.ReadingListEntry) error

	// GetByID retrieves an entry by its unique ID.
	// Returns ErrReadingListEntryNotFound if the entry does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReadingListEntry, error)

	// MarkRead flips an unread entry to read and returns the updated row.
	// Returns ErrAlreadyRead if the entry was already read, including when a
	// concurrent request won the transition first.
	// Returns ErrReadingListEntryNotFound if the entry does not exist.
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.ReadingListEntry, error)
}

// SessionStore defines the interface for the append-only session registry.
type SessionStore interface {
	// Create appends a session record for a freshly issued token.
	Create(ctx context.Context, session *domain.Session) error

	// GetByToken retrieves the session for a token string.
	// Returns ErrSessionNotFound if no session was ever recorded for it.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}
