package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingListEntry marks a blog as saved for later by a user.
// Entries start unread and transition to read exactly once.
type ReadingListEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	BlogID    uuid.UUID `json:"blogId"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReadingListEntry creates a new unread entry on the given user's list.
func NewReadingListEntry(userID, blogID uuid.UUID) (*ReadingListEntry, error) {
	now := time.Now().UTC()
	entry := &ReadingListEntry{
		ID:        uuid.New(),
		UserID:    userID,
		BlogID:    blogID,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the entry has valid data.
func (e *ReadingListEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if e.BlogID == uuid.Nil {
		return ErrEmptyBlogID
	}

	return nil
}
