package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/lang-portal/internal/store"
)

// ResetService performs the bulk deletions. Each reset runs as a single
// transaction: a failure part-way rolls everything back, so the store is
// either fully cleared or untouched.
type ResetService interface {
	// ResetHistory deletes all review items and sessions, leaving the
	// catalog (words, groups, activities, links) intact.
	ResetHistory(ctx context.Context) error

	// FullReset deletes every entity in dependency order.
	FullReset(ctx context.Context) error
}

// resetService is the production ResetService implementation.
type resetService struct {
	db     *sql.DB
	resets store.ResetStore
	logger *slog.Logger
}

// NewResetService creates a ResetService over the given reset store.
// If logger is nil, a default logger will be used.
func NewResetService(db *sql.DB, resets store.ResetStore, logger *slog.Logger) ResetService {
	if logger == nil {
		logger = slog.Default()
	}

	return &resetService{
		db:     db,
		resets: resets,
		logger: logger.With(slog.String("component", "reset_service")),
	}
}

// ResetHistory implements ResetService.ResetHistory
func (s *resetService) ResetHistory(ctx context.Context) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.resets.WithTx(tx).ResetHistory(ctx)
	})
	if err != nil {
		return newError("reset_history", "failed to reset study history", err)
	}

	s.logger.Info("study history reset")
	return nil
}

// FullReset implements ResetService.FullReset
func (s *resetService) FullReset(ctx context.Context) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.resets.WithTx(tx).FullReset(ctx)
	})
	if err != nil {
		return newError("full_reset", "failed to reset all data", err)
	}

	s.logger.Info("full reset completed")
	return nil
}
