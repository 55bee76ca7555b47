package postgres

import (
	"context"
	"log/slog"
	"math"

	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/store"
)

// StatsStore implements the store.StatsStore interface. Every aggregate is
// recomputed from the live rows on each call; keeping no counters means
// there is nothing to invalidate on writes.
type StatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStatsStore creates a new PostgreSQL implementation of the StatsStore
// interface. If logger is nil, a default logger will be used.
func NewStatsStore(db store.DBTX, logger *slog.Logger) *StatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure StatsStore implements store.StatsStore interface
var _ store.StatsStore = (*StatsStore)(nil)

// WordStats implements store.StatsStore.WordStats
// Both counts come back zero for a word with no reviews.
func (s *StatsStore) WordStats(ctx context.Context, wordID int64) (store.WordStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE correct),
			COUNT(*) FILTER (WHERE NOT correct)
		FROM word_review_items
		WHERE word_id = $1
	`

	var stats store.WordStats
	err := s.db.QueryRowContext(ctx, query, wordID).Scan(&stats.CorrectCount, &stats.WrongCount)
	if err != nil {
		log.Error("failed to compute word stats",
			slog.String("error", err.Error()),
			slog.Int64("word_id", wordID))
		return store.WordStats{}, err
	}

	return stats, nil
}

// SessionReviewCount implements store.StatsStore.SessionReviewCount
func (s *StatsStore) SessionReviewCount(ctx context.Context, sessionID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM word_review_items WHERE study_session_id = $1`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// StudyProgress implements store.StatsStore.StudyProgress
func (s *StatsStore) StudyProgress(ctx context.Context) (store.StudyProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			(SELECT COUNT(DISTINCT word_id) FROM word_review_items),
			(SELECT COUNT(*) FROM words)
	`

	var progress store.StudyProgress
	err := s.db.QueryRowContext(ctx, query).Scan(
		&progress.TotalWordsStudied,
		&progress.TotalAvailableWords,
	)
	if err != nil {
		log.Error("failed to compute study progress", slog.String("error", err.Error()))
		return store.StudyProgress{}, err
	}

	return progress, nil
}

// QuickStats implements store.StatsStore.QuickStats
// The streak value counts distinct UTC calendar dates of created_at,
// not a contiguous run of days. The AT TIME ZONE shift keeps the date
// boundary independent of the server's TimeZone setting.
func (s *StatsStore) QuickStats(ctx context.Context) (store.QuickStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			(SELECT COUNT(*) FROM word_review_items),
			(SELECT COUNT(*) FROM word_review_items WHERE correct),
			(SELECT COUNT(*) FROM study_sessions),
			(SELECT COUNT(DISTINCT group_id) FROM study_sessions),
			(SELECT COUNT(DISTINCT (created_at AT TIME ZONE 'UTC')::date) FROM study_sessions)
	`

	var totalReviews, correctReviews int
	var stats store.QuickStats
	err := s.db.QueryRowContext(ctx, query).Scan(
		&totalReviews,
		&correctReviews,
		&stats.TotalStudySessions,
		&stats.TotalActiveGroups,
		&stats.StudyStreakDays,
	)
	if err != nil {
		log.Error("failed to compute quick stats", slog.String("error", err.Error()))
		return store.QuickStats{}, err
	}

	stats.SuccessRate = successRate(correctReviews, totalReviews)
	return stats, nil
}

// successRate returns 100*correct/total rounded to one decimal place,
// and 0.0 when there are no reviews at all.
func successRate(correct, total int) float64 {
	if total == 0 {
		return 0.0
	}
	rate := float64(correct) / float64(total) * 100
	return math.Round(rate*10) / 10
}
