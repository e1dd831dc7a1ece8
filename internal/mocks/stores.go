package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]*domain.UserWithBlogs, error)

	// User is the default return value for lookups when no Fn is set.
	User *domain.User
	Err  error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return m.User, m.Err
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.UserWithBlogs, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, m.Err
}

// MockBlogStore implements store.BlogStore for testing.
type MockBlogStore struct {
	CreateFn      func(ctx context.Context, blog *domain.Blog) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListFn        func(ctx context.Context, search string) ([]*domain.BlogWithOwner, error)
	UpdateLikesFn func(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	ListAuthorsFn func(ctx context.Context) ([]*domain.AuthorStats, error)

	// Blog is the default return value for lookups when no Fn is set.
	Blog *domain.Blog
	Err  error
}

var _ store.BlogStore = (*MockBlogStore)(nil)

func (m *MockBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, blog)
	}
	return m.Err
}

func (m *MockBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Blog, m.Err
}

func (m *MockBlogStore) List(ctx context.Context, search string) ([]*domain.BlogWithOwner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, search)
	}
	return nil, m.Err
}

func (m *MockBlogStore) UpdateLikes(
	ctx context.Context,
	id uuid.UUID,
	likes int,
) (*domain.Blog, error) {
	if m.UpdateLikesFn != nil {
		return m.UpdateLikesFn(ctx, id, likes)
	}
	return m.Blog, m.Err
}

func (m *MockBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockBlogStore) ListAuthors(ctx context.Context) ([]*domain.AuthorStats, error) {
	if m.ListAuthorsFn != nil {
		return m.ListAuthorsFn(ctx)
	}
	return nil, m.Err
}

// MockReadingListStore implements store.ReadingListStore for testing.
type MockReadingListStore struct {
	CreateFn   func(ctx context.Context, entry *domain.ReadingListEntry) error
	GetByIDFn  func(ctx context.Context, id uuid.UUID) (*domain.ReadingListEntry, error)
	MarkReadFn func(ctx context.Context, id uuid.UUID) (*domain.ReadingListEntry, error)

	Entry *domain.ReadingListEntry
	Err   error
}

var _ store.ReadingListStore = (*MockReadingListStore)(nil)

func (m *MockReadingListStore) Create(ctx context.Context, entry *domain.ReadingListEntry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entry)
	}
	return m.Err
}

func (m *MockReadingListStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.ReadingListEntry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Entry, m.Err
}

func (m *MockReadingListStore) MarkRead(
	ctx context.Context,
	id uuid.UUID,
) (*domain.ReadingListEntry, error) {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id)
	}
	return m.Entry, m.Err
}

// MockSessionStore implements store.SessionStore for testing.
type MockSessionStore struct {
	CreateFn     func(ctx context.Context, session *domain.Session) error
	GetByTokenFn func(ctx context.Context, token string) (*domain.Session, error)

	Session *domain.Session
	Err     error
}

var _ store.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}
	return m.Err
}

func (m *MockSessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	if m.Session != nil || m.Err != nil {
		return m.Session, m.Err
	}
	// Default: behave as if the session was recorded at login and is active.
	return &domain.Session{Token: token, Active: true}, nil
}
