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

// ReadingListStore implements store.ReadingListStore using PostgreSQL.
type ReadingListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReadingListStore creates a new PostgreSQL implementation of
// store.ReadingListStore.
func NewReadingListStore(db store.DBTX, log *slog.Logger) *ReadingListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReadingListStore{
		db:     db,
		logger: log.With(slog.String("component", "reading_list_store")),
	}
}

var _ store.ReadingListStore = (*ReadingListStore)(nil)

// Create implements store.ReadingListStore.Create.
func (s *ReadingListStore) Create(ctx context.Context, entry *domain.ReadingListEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("reading list entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO reading_lists (id, user_id, blog_id, read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.UserID,
		entry.BlogID,
		entry.Read,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create reading list entry",
			slog.String("error", redact.Error(err)),
			slog.String("entry_id", entry.ID.String()),
			slog.String("user_id", entry.UserID.String()))
		return MapError(err)
	}

	log.Info("reading list entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()))
	return nil
}

// GetByID implements store.ReadingListStore.GetByID.
func (s *ReadingListStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReadingListEntry, error) {
	query := `
		SELECT id, user_id, blog_id, read, created_at, updated_at
		FROM reading_lists
		WHERE id = $1
	`
	var entry domain.ReadingListEntry
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.BlogID,
		&entry.Read,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrReadingListEntryNotFound
		}
		return nil, MapError(err)
	}

	return &entry, nil
}

// MarkRead implements store.ReadingListStore.MarkRead.
// The guarded update makes the unread->read transition atomic: of two
// concurrent calls, exactly one sees an affected row; the loser observes the
// already-read state and is rejected.
func (s *ReadingListStore) MarkRead(ctx context.Context, id uuid.UUID) (*domain.ReadingListEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE reading_lists
		SET read = TRUE, updated_at = NOW()
		WHERE id = $1 AND read = FALSE
		RETURNING id, user_id, blog_id, read, created_at, updated_at
	`
	var entry domain.ReadingListEntry
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.BlogID,
		&entry.Read,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Distinguish a missing row from one that lost the transition race.
			if _, getErr := s.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, store.ErrAlreadyRead
		}
		log.Error("failed to mark reading list entry read",
			slog.String("error", redact.Error(err)),
			slog.String("entry_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("reading list entry marked read", slog.String("entry_id", id.String()))
	return &entry, nil
}
