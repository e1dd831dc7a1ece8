package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewBlog(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	tests := []struct {
		name    string
		userID  uuid.UUID
		title   string
		url     string
		year    *int
		wantErr error
	}{
		{
			name:   "valid blog",
			userID: ownerID,
			title:  "Go, with tests",
			url:    "https://example.com/go-with-tests",
		},
		{
			name:   "valid blog with year",
			userID: ownerID,
			title:  "Practical Go",
			url:    "https://example.com/practical-go",
			year:   intPtr(2019),
		},
		{
			name:    "missing owner",
			userID:  uuid.Nil,
			title:   "Orphaned",
			url:     "https://example.com/orphaned",
			wantErr: domain.ErrEmptyUserID,
		},
		{
			name:    "missing title",
			userID:  ownerID,
			url:     "https://example.com/untitled",
			wantErr: domain.ErrTitleRequired,
		},
		{
			name:    "missing url",
			userID:  ownerID,
			title:   "No link",
			wantErr: domain.ErrURLRequired,
		},
		{
			name:    "year before 1991",
			userID:  ownerID,
			title:   "Prehistoric",
			url:     "https://example.com/prehistoric",
			year:    intPtr(1990),
			wantErr: domain.ErrYearOutOfRange,
		},
		{
			name:    "year in the future",
			userID:  ownerID,
			title:   "From the future",
			url:     "https://example.com/future",
			year:    intPtr(time.Now().Year() + 1),
			wantErr: domain.ErrYearOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blog, err := domain.NewBlog(tt.userID, tt.title, "", tt.url, tt.year, 0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, blog)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userID, blog.UserID)
			assert.Equal(t, 0, blog.Likes, "likes must default to zero")
		})
	}
}

func TestNewReadingListEntry(t *testing.T) {
	t.Parallel()

	entry, err := domain.NewReadingListEntry(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, entry.Read, "entries start unread")

	_, err = domain.NewReadingListEntry(uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, domain.ErrEmptyUserID)

	_, err = domain.NewReadingListEntry(uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBlogID)
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	session, err := domain.NewSession(uuid.New(), "signed-token")
	require.NoError(t, err)
	assert.True(t, session.Active, "sessions start active")

	_, err = domain.NewSession(uuid.New(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyToken)
}
