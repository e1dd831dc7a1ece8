package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/platform/logger"
	"github.com/phrazzld/bloglist-api/internal/redact"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// BlogStore implements the store.BlogStore interface using PostgreSQL.
type BlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBlogStore creates a new PostgreSQL implementation of store.BlogStore.
func NewBlogStore(db store.DBTX, log *slog.Logger) *BlogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &BlogStore{
		db:     db,
		logger: log.With(slog.String("component", "blog_store")),
	}
}

var _ store.BlogStore = (*BlogStore)(nil)

// Create implements store.BlogStore.Create. Referential integrity of the
// owner reference is enforced by the blogs_user_id_fkey constraint.
func (s *BlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return err
	}

	query := `
		INSERT INTO blogs (id, user_id, title, author, url, year, likes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		blog.ID,
		blog.UserID,
		blog.Title,
		nullString(blog.Author),
		blog.URL,
		nullYear(blog.Year),
		blog.Likes,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create blog",
			slog.String("error", redact.Error(err)),
			slog.String("blog_id", blog.ID.String()),
			slog.String("user_id", blog.UserID.String()))
		return MapError(err)
	}

	log.Info("blog created",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", blog.UserID.String()))
	return nil
}

// GetByID implements store.BlogStore.GetByID.
func (s *BlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	query := `
		SELECT id, user_id, title, author, url, year, likes, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`
	return s.scanBlog(s.db.QueryRowContext(ctx, query, id))
}

// List implements store.BlogStore.List.
func (s *BlogStore) List(ctx context.Context, search string) ([]*domain.BlogWithOwner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT b.id, b.user_id, b.title, b.author, b.url, b.year, b.likes, b.created_at, b.updated_at,
		       u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		WHERE $1 = '' OR b.title ILIKE '%' || $1 || '%' OR b.author ILIKE '%' || $1 || '%'
		ORDER BY b.likes DESC
	`
	rows, err := s.db.QueryContext(ctx, query, search)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	blogs := []*domain.BlogWithOwner{}
	for rows.Next() {
		var (
			b      domain.BlogWithOwner
			author sql.NullString
			year   sql.NullInt64
		)
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Title, &author, &b.URL, &year, &b.Likes,
			&b.CreatedAt, &b.UpdatedAt,
			&b.Owner.ID, &b.Owner.Username, &b.Owner.Name,
		)
		if err != nil {
			log.Error("failed to scan blog row", slog.String("error", redact.Error(err)))
			return nil, MapError(err)
		}
		b.Author = author.String
		if year.Valid {
			y := int(year.Int64)
			b.Year = &y
		}
		blogs = append(blogs, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return blogs, nil
}

// UpdateLikes implements store.BlogStore.UpdateLikes.
func (s *BlogStore) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error) {
	query := `
		UPDATE blogs
		SET likes = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, author, url, year, likes, created_at, updated_at
	`
	blog, err := s.scanBlog(s.db.QueryRowContext(ctx, query, id, likes))
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("blog likes updated",
		slog.String("blog_id", id.String()),
		slog.Int("likes", likes))
	return blog, nil
}

// Delete implements store.BlogStore.Delete.
func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete blog",
			slog.String("error", redact.Error(err)),
			slog.String("blog_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrBlogNotFound); err != nil {
		return err
	}

	log.Info("blog deleted", slog.String("blog_id", id.String()))
	return nil
}

// ListAuthors implements store.BlogStore.ListAuthors.
func (s *BlogStore) ListAuthors(ctx context.Context) ([]*domain.AuthorStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT author, COUNT(*) AS articles, COALESCE(SUM(likes), 0) AS likes
		FROM blogs
		WHERE author IS NOT NULL AND author <> ''
		GROUP BY author
		ORDER BY likes DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to aggregate authors", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	authors := []*domain.AuthorStats{}
	for rows.Next() {
		var a domain.AuthorStats
		if err := rows.Scan(&a.Author, &a.Articles, &a.Likes); err != nil {
			return nil, MapError(err)
		}
		authors = append(authors, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return authors, nil
}

func (s *BlogStore) scanBlog(row *sql.Row) (*domain.Blog, error) {
	var (
		b      domain.Blog
		author sql.NullString
		year   sql.NullInt64
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.Title, &author, &b.URL, &year, &b.Likes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrBlogNotFound
		}
		return nil, MapError(err)
	}

	b.Author = author.String
	if year.Valid {
		y := int(year.Int64)
		b.Year = &y
	}
	return &b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullYear(year *int) sql.NullInt64 {
	if year == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*year), Valid: true}
}
