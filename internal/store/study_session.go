package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/lang-portal/internal/domain"
)

// StudySessionStore defines the interface for study session persistence.
type StudySessionStore interface {
	// Create saves a new session, assigning its ID. The caller verifies the
	// group and activity references within the same transaction; the store
	// additionally maps foreign key violations to the matching not-found error.
	Create(ctx context.Context, session *domain.StudySession) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id int64) (*domain.StudySession, error)

	// List retrieves sessions ordered by ID for the given range.
	List(ctx context.Context, limit, offset int) ([]*domain.StudySession, error)

	// ListByGroup retrieves the sessions created against the given group.
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*domain.StudySession, error)

	// ListByActivity retrieves the sessions created against the given activity.
	ListByActivity(ctx context.Context, activityID int64, limit, offset int) ([]*domain.StudySession, error)

	// Count returns the total number of sessions.
	Count(ctx context.Context) (int, error)

	// CountByGroup returns the number of sessions for the group.
	CountByGroup(ctx context.Context, groupID int64) (int, error)

	// CountByActivity returns the number of sessions for the activity.
	CountByActivity(ctx context.Context, activityID int64) (int, error)

	// Last retrieves the most recently created session, ordering by
	// created_at descending with ID descending as the tie-break.
	// Returns ErrSessionNotFound when no sessions exist.
	Last(ctx context.Context) (*domain.StudySession, error)

	// End sets the session's ended_at to the given instant.
	// Returns ErrSessionNotFound if the session does not exist and
	// ErrSessionAlreadyEnded if ended_at is already set; in the latter
	// case the stored timestamp is left unchanged. A session cannot be
	// reopened.
	End(ctx context.Context, id int64, endedAt time.Time) error

	// WithTx returns a new StudySessionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StudySessionStore
}
