package domain

import (
	"time"

	"github.com/google/uuid"
)

// minBlogYear is the earliest publication year a blog may carry.
// The web predates nothing older.
const minBlogYear = 1991

// Blog represents a single blog listing owned by a user.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	URL       string    `json:"url"`
	Year      *int      `json:"year,omitempty"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog owned by the given user.
// Likes default to zero when not supplied by the caller.
func NewBlog(userID uuid.UUID, title, author, url string, year *int, likes int) (*Blog, error) {
	now := time.Now().UTC()
	blog := &Blog{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Author:    author,
		URL:       url,
		Year:      year,
		Likes:     likes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks if the Blog has valid data.
func (b *Blog) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if b.Title == "" {
		return ErrTitleRequired
	}

	if b.URL == "" {
		return ErrURLRequired
	}

	if b.Year != nil {
		if *b.Year < minBlogYear || *b.Year > time.Now().Year() {
			return ErrYearOutOfRange
		}
	}

	return nil
}

// OwnerSummary is the subset of user fields embedded in blog listings.
type OwnerSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

// BlogWithOwner pairs a blog with a summary of its owning user.
type BlogWithOwner struct {
	Blog
	Owner OwnerSummary `json:"user"`
}

// AuthorStats aggregates blog counts and likes per author.
type AuthorStats struct {
	Author   string `json:"author"`
	Articles int    `json:"articles"`
	Likes    int    `json:"likes"`
}
