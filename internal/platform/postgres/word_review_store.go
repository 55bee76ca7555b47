package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/store"
)

// WordReviewStore implements the store.WordReviewStore interface
// using a PostgreSQL database as the storage backend.
type WordReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWordReviewStore creates a new PostgreSQL implementation of the
// WordReviewStore interface. If logger is nil, a default logger will be used.
func NewWordReviewStore(db store.DBTX, logger *slog.Logger) *WordReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &WordReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_review_store")),
	}
}

// Ensure WordReviewStore implements store.WordReviewStore interface
var _ store.WordReviewStore = (*WordReviewStore)(nil)

// WithTx implements store.WordReviewStore.WithTx
func (s *WordReviewStore) WithTx(tx *sql.Tx) store.WordReviewStore {
	return &WordReviewStore{db: tx, logger: s.logger}
}

// Create implements store.WordReviewStore.Create
// Review rows are append-only; there is no update path.
func (s *WordReviewStore) Create(ctx context.Context, item *domain.WordReviewItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("review item validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO word_review_items (word_id, study_session_id, correct, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		item.WordID,
		item.StudySessionID,
		item.Correct,
		item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if fkErr := mapReviewFKViolation(err); fkErr != nil {
			log.Warn("foreign key violation during review creation",
				slog.Int64("word_id", item.WordID),
				slog.Int64("session_id", item.StudySessionID))
			return fkErr
		}
		log.Error("failed to create review item",
			slog.String("error", err.Error()),
			slog.Int64("word_id", item.WordID),
			slog.Int64("session_id", item.StudySessionID))
		return err
	}

	log.Info("review item created",
		slog.Int64("review_id", item.ID),
		slog.Int64("word_id", item.WordID),
		slog.Int64("session_id", item.StudySessionID),
		slog.Bool("correct", item.Correct))
	return nil
}

// mapReviewFKViolation resolves which reference a review FK violation points
// at, using the constraint name. Returns nil for non-FK errors.
func mapReviewFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolationCode {
		return nil
	}

	switch pgErr.ConstraintName {
	case "word_review_items_word_id_fkey":
		return store.ErrWordNotFound
	case "word_review_items_study_session_id_fkey":
		return store.ErrSessionNotFound
	}
	return store.ErrNotFound
}
