package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/lang-portal/internal/domain"
)

// GroupStore defines the interface for group data persistence.
type GroupStore interface {
	// Create saves a new group, assigning its ID.
	// Returns ErrGroupNameExists if a group with the same name already exists.
	Create(ctx context.Context, group *domain.Group) error

	// GetByID retrieves a group by its unique ID.
	// Returns ErrGroupNotFound if the group does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Group, error)

	// List retrieves groups ordered by ID for the given range.
	List(ctx context.Context, limit, offset int) ([]*domain.Group, error)

	// Count returns the total number of groups.
	Count(ctx context.Context) (int, error)

	// WithTx returns a new GroupStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) GroupStore
}
