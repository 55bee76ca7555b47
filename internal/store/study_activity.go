package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/lang-portal/internal/domain"
)

// StudyActivityStore defines the interface for study activity persistence.
// Activities are read-mostly catalog data; the activity listing is the one
// unpaged listing in the system.
type StudyActivityStore interface {
	// Create saves a new study activity, assigning its ID.
	Create(ctx context.Context, activity *domain.StudyActivity) error

	// GetByID retrieves a study activity by its unique ID.
	// Returns ErrActivityNotFound if the activity does not exist.
	GetByID(ctx context.Context, id int64) (*domain.StudyActivity, error)

	// List retrieves all study activities ordered by ID.
	List(ctx context.Context) ([]*domain.StudyActivity, error)

	// WithTx returns a new StudyActivityStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StudyActivityStore
}
