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

// GroupStore implements the store.GroupStore interface
// using a PostgreSQL database as the storage backend.
type GroupStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewGroupStore creates a new PostgreSQL implementation of the GroupStore interface.
// If logger is nil, a default logger will be used.
func NewGroupStore(db store.DBTX, logger *slog.Logger) *GroupStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GroupStore{
		db:     db,
		logger: logger.With(slog.String("component", "group_store")),
	}
}

// Ensure GroupStore implements store.GroupStore interface
var _ store.GroupStore = (*GroupStore)(nil)

// WithTx implements store.GroupStore.WithTx
func (s *GroupStore) WithTx(tx *sql.Tx) store.GroupStore {
	return &GroupStore{db: tx, logger: s.logger}
}

// Create implements store.GroupStore.Create
// Returns store.ErrGroupNameExists when the unique name constraint is violated.
func (s *GroupStore) Create(ctx context.Context, group *domain.Group) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		log.Warn("group validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, group.Name).Scan(&group.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate group name", slog.String("name", group.Name))
			return store.ErrGroupNameExists
		}
		log.Error("failed to create group",
			slog.String("error", err.Error()),
			slog.String("name", group.Name))
		return err
	}

	log.Info("group created successfully",
		slog.Int64("group_id", group.ID),
		slog.String("name", group.Name))
	return nil
}

// GetByID implements store.GroupStore.GetByID
// Returns store.ErrGroupNotFound if the group does not exist.
func (s *GroupStore) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM groups
		WHERE id = $1
	`

	var group domain.Group
	err := s.db.QueryRowContext(ctx, query, id).Scan(&group.ID, &group.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("group not found", slog.Int64("group_id", id))
			return nil, store.ErrGroupNotFound
		}
		log.Error("failed to get group by ID",
			slog.String("error", err.Error()),
			slog.Int64("group_id", id))
		return nil, err
	}

	return &group, nil
}

// List implements store.GroupStore.List
func (s *GroupStore) List(ctx context.Context, limit, offset int) ([]*domain.Group, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM groups
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to query groups", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	groups := []*domain.Group{}
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			log.Error("failed to scan group row", slog.String("error", err.Error()))
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return groups, nil
}

// Count implements store.GroupStore.Count
func (s *GroupStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
