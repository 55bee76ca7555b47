package store

import (
	"context"
	"database/sql"
)

// ResetStore defines the bulk deletion operations. Both operations span
// multiple tables and MUST run within a transaction (WithTx together with
// store.RunInTransaction) so the store is never left partially cleared.
type ResetStore interface {
	// ResetHistory deletes all review items and then all study sessions.
	// Catalog data (words, groups, activities, word-group links) is untouched.
	ResetHistory(ctx context.Context) error

	// FullReset deletes every entity in dependency order: review items,
	// sessions, word-group links, words, groups, activities.
	FullReset(ctx context.Context) error

	// WithTx returns a new ResetStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ResetStore
}
