package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/store"
)

// ResetStore implements the store.ResetStore interface
// using a PostgreSQL database as the storage backend.
type ResetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewResetStore creates a new PostgreSQL implementation of the ResetStore
// interface. If logger is nil, a default logger will be used.
func NewResetStore(db store.DBTX, logger *slog.Logger) *ResetStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ResetStore{
		db:     db,
		logger: logger.With(slog.String("component", "reset_store")),
	}
}

// Ensure ResetStore implements store.ResetStore interface
var _ store.ResetStore = (*ResetStore)(nil)

// WithTx implements store.ResetStore.WithTx
func (s *ResetStore) WithTx(tx *sql.Tx) store.ResetStore {
	return &ResetStore{db: tx, logger: s.logger}
}

// ResetHistory implements store.ResetStore.ResetHistory
// Reviews go first so the session deletes never hit a referencing row.
func (s *ResetStore) ResetHistory(ctx context.Context) error {
	return s.deleteFrom(ctx,
		"word_review_items",
		"study_sessions",
	)
}

// FullReset implements store.ResetStore.FullReset
// Tables are cleared in dependency order so every delete respects the
// foreign key constraints.
func (s *ResetStore) FullReset(ctx context.Context) error {
	return s.deleteFrom(ctx,
		"word_review_items",
		"study_sessions",
		"words_groups",
		"words",
		"groups",
		"study_activities",
	)
}

// deleteFrom clears the given tables in order. Run within a transaction
// so a failure part-way leaves the store untouched.
func (s *ResetStore) deleteFrom(ctx context.Context, tables ...string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Error("failed to clear table",
				slog.String("error", err.Error()),
				slog.String("table", table))
			return err
		}
	}

	log.Info("bulk delete completed", slog.Int("tables", len(tables)))
	return nil
}
