package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/store"
)

// StudyActivityStore implements the store.StudyActivityStore interface
// using a PostgreSQL database as the storage backend.
type StudyActivityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStudyActivityStore creates a new PostgreSQL implementation of the
// StudyActivityStore interface. If logger is nil, a default logger will be used.
func NewStudyActivityStore(db store.DBTX, logger *slog.Logger) *StudyActivityStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StudyActivityStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_activity_store")),
	}
}

// Ensure StudyActivityStore implements store.StudyActivityStore interface
var _ store.StudyActivityStore = (*StudyActivityStore)(nil)

// WithTx implements store.StudyActivityStore.WithTx
func (s *StudyActivityStore) WithTx(tx *sql.Tx) store.StudyActivityStore {
	return &StudyActivityStore{db: tx, logger: s.logger}
}

// Create implements store.StudyActivityStore.Create
func (s *StudyActivityStore) Create(ctx context.Context, activity *domain.StudyActivity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := activity.Validate(); err != nil {
		log.Warn("study activity validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO study_activities (name, thumbnail, description, url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		activity.Name,
		activity.Thumbnail,
		activity.Description,
		activity.URL,
	).Scan(&activity.ID)
	if err != nil {
		log.Error("failed to create study activity",
			slog.String("error", err.Error()),
			slog.String("name", activity.Name))
		return err
	}

	log.Info("study activity created successfully",
		slog.Int64("activity_id", activity.ID),
		slog.String("name", activity.Name))
	return nil
}

// GetByID implements store.StudyActivityStore.GetByID
// Returns store.ErrActivityNotFound if the activity does not exist.
func (s *StudyActivityStore) GetByID(ctx context.Context, id int64) (*domain.StudyActivity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, thumbnail, description, url
		FROM study_activities
		WHERE id = $1
	`

	var activity domain.StudyActivity
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Thumbnail,
		&activity.Description,
		&activity.URL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("study activity not found", slog.Int64("activity_id", id))
			return nil, store.ErrActivityNotFound
		}
		log.Error("failed to get study activity by ID",
			slog.String("error", err.Error()),
			slog.Int64("activity_id", id))
		return nil, err
	}

	return &activity, nil
}

// List implements store.StudyActivityStore.List
func (s *StudyActivityStore) List(ctx context.Context) ([]*domain.StudyActivity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, thumbnail, description, url
		FROM study_activities
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query study activities", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	activities := []*domain.StudyActivity{}
	for rows.Next() {
		var activity domain.StudyActivity
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Thumbnail,
			&activity.Description,
			&activity.URL,
		)
		if err != nil {
			log.Error("failed to scan study activity row", slog.String("error", err.Error()))
			return nil, err
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return activities, nil
}
