package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/lang-portal/internal/domain"
)

// WordReviewStore defines the interface for review outcome persistence.
// Review items are append-only: they are created one at a time and removed
// only by the reset operations.
type WordReviewStore interface {
	// Create appends a new review item, assigning its ID. The caller
	// verifies the word and session references within the same transaction;
	// the store additionally maps foreign key violations to the matching
	// not-found error.
	Create(ctx context.Context, item *domain.WordReviewItem) error

	// WithTx returns a new WordReviewStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WordReviewStore
}
