package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/lang-portal/internal/domain"
)

// WordStore defines the interface for word data persistence.
type WordStore interface {
	// Create saves a new word and links it to the given groups in one pass,
	// assigning the word's ID. Creating the word row and its words_groups
	// links is a multi-step mutation and MUST run within a transaction:
	// use WithTx together with store.RunInTransaction so either all rows
	// persist or none do.
	// Returns ErrGroupNotFound if any linked group does not exist.
	Create(ctx context.Context, word *domain.Word, groupIDs []int64) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Word, error)

	// List retrieves words ordered by ID for the given range.
	// Returns an empty slice when the range is past the end of the catalog.
	List(ctx context.Context, limit, offset int) ([]*domain.Word, error)

	// ListByGroup retrieves the words linked to the given group, ordered by ID.
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*domain.Word, error)

	// Count returns the total number of words in the catalog.
	Count(ctx context.Context) (int, error)

	// CountByGroup returns the number of words_groups links for the group.
	CountByGroup(ctx context.Context, groupID int64) (int, error)

	// GroupsForWord retrieves the groups the word belongs to, ordered by ID.
	// Returns an empty slice for a word with no group links.
	GroupsForWord(ctx context.Context, wordID int64) ([]*domain.Group, error)

	// WithTx returns a new WordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WordStore
}
