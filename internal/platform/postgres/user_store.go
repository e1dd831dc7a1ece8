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

// UserStore implements the store.UserStore interface using PostgreSQL.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of store.UserStore.
// The database connection is initialized and managed by the caller.
func NewUserStore(db store.DBTX, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// Username uniqueness is enforced by the users_username_key constraint; two
// concurrent registrations with the same handle cannot both succeed.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, username, name, password_hash, disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Name,
		user.HashedPassword,
		user.Disabled,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Warn("duplicate username during user creation",
				slog.String("user_id", user.ID.String()))
		} else {
			log.Error("failed to create user",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", user.ID.String()))
		}
		return mapped
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, name, password_hash, disabled, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(ctx, s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, name, password_hash, disabled, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return s.scanUser(ctx, s.db.QueryRowContext(ctx, query, username))
}

// List implements store.UserStore.List. Owned blogs are fetched in the same
// round trip with a left join so users without blogs still appear.
func (s *UserStore) List(ctx context.Context) ([]*domain.UserWithBlogs, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT u.id, u.username, u.name, u.disabled, u.created_at, u.updated_at,
		       b.id, b.user_id, b.title, b.author, b.url, b.year, b.likes, b.created_at, b.updated_at
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		ORDER BY u.created_at, b.created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		users []*domain.UserWithBlogs
		byID  = make(map[uuid.UUID]*domain.UserWithBlogs)
	)
	for rows.Next() {
		var (
			u      domain.User
			b      domain.Blog
			blogID uuid.NullUUID
			bOwner uuid.NullUUID
			title  sql.NullString
			author sql.NullString
			url    sql.NullString
			year   sql.NullInt64
			likes  sql.NullInt64
			bCre   sql.NullTime
			bUpd   sql.NullTime
		)
		err := rows.Scan(
			&u.ID, &u.Username, &u.Name, &u.Disabled, &u.CreatedAt, &u.UpdatedAt,
			&blogID, &bOwner, &title, &author, &url, &year, &likes, &bCre, &bUpd,
		)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", redact.Error(err)))
			return nil, MapError(err)
		}

		entry, ok := byID[u.ID]
		if !ok {
			entry = &domain.UserWithBlogs{User: u, Blogs: []*domain.Blog{}}
			byID[u.ID] = entry
			users = append(users, entry)
		}

		if blogID.Valid {
			b.ID = blogID.UUID
			b.UserID = bOwner.UUID
			b.Title = title.String
			b.Author = author.String
			b.URL = url.String
			if year.Valid {
				y := int(year.Int64)
				b.Year = &y
			}
			b.Likes = int(likes.Int64)
			b.CreatedAt = bCre.Time
			b.UpdatedAt = bUpd.Time
			blog := b
			entry.Blogs = append(entry.Blogs, &blog)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

func (s *UserStore) scanUser(ctx context.Context, row *sql.Row) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.HashedPassword,
		&user.Disabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to scan user", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}

	return &user, nil
}
