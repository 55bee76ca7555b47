package store

import "context"

// WordStats holds the per-word review outcome counts.
type WordStats struct {
	CorrectCount int `json:"correct_count"`
	WrongCount   int `json:"wrong_count"`
}

// StudyProgress holds the dashboard progress pair: how many distinct words
// have at least one review, and how many words exist in the catalog.
type StudyProgress struct {
	TotalWordsStudied   int `json:"total_words_studied"`
	TotalAvailableWords int `json:"total_available_words"`
}

// QuickStats holds the dashboard overview numbers. StudyStreakDays counts
// distinct calendar dates with at least one session, not a contiguous run.
type QuickStats struct {
	SuccessRate        float64 `json:"success_rate"`
	TotalStudySessions int     `json:"total_study_sessions"`
	TotalActiveGroups  int     `json:"total_active_groups"`
	StudyStreakDays    int     `json:"study_streak_days"`
}

// StatsStore defines the read-only aggregation queries. Every value is
// computed from the live review and relationship rows on each call; there
// are no denormalized counters to keep in sync. All methods degrade to
// zero-valued results on an empty dataset rather than erroring.
type StatsStore interface {
	// WordStats returns the counts of correct and incorrect reviews for the
	// word. Both counts are zero for a word with no reviews; the word's
	// existence is not checked here.
	WordStats(ctx context.Context, wordID int64) (WordStats, error)

	// SessionReviewCount returns the number of review items recorded
	// against the session.
	SessionReviewCount(ctx context.Context, sessionID int64) (int, error)

	// StudyProgress returns the dashboard progress pair.
	StudyProgress(ctx context.Context) (StudyProgress, error)

	// QuickStats returns the dashboard overview numbers. SuccessRate is
	// 100*correct/total rounded to one decimal place, and 0.0 when no
	// reviews exist.
	QuickStats(ctx context.Context) (QuickStats, error)
}
