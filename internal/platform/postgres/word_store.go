package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/store"
)

// WordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type WordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWordStore creates a new PostgreSQL implementation of the WordStore interface.
// It accepts a database connection or transaction that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewWordStore(db store.DBTX, logger *slog.Logger) *WordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &WordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure WordStore implements store.WordStore interface
var _ store.WordStore = (*WordStore)(nil)

// WithTx implements store.WordStore.WithTx
func (s *WordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &WordStore{db: tx, logger: s.logger}
}

// Create implements store.WordStore.Create
// It inserts the word row and one words_groups link per group ID. Run it
// within a transaction so the word and its links persist together.
func (s *WordStore) Create(ctx context.Context, word *domain.Word, groupIDs []int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	parts, err := json.Marshal(word.Parts)
	if err != nil {
		return fmt.Errorf("failed to marshal word parts: %w", err)
	}

	query := `
		INSERT INTO words (korean, transliteration, english, parts)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = s.db.QueryRowContext(
		ctx,
		query,
		word.Korean,
		word.Transliteration,
		word.English,
		parts,
	).Scan(&word.ID)
	if err != nil {
		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("korean", word.Korean))
		return err
	}

	linkQuery := `
		INSERT INTO words_groups (word_id, group_id)
		VALUES ($1, $2)
	`
	for _, groupID := range groupIDs {
		if _, err := s.db.ExecContext(ctx, linkQuery, word.ID, groupID); err != nil {
			if isForeignKeyViolation(err) {
				log.Warn("foreign key violation during word-group link creation",
					slog.Int64("word_id", word.ID),
					slog.Int64("group_id", groupID))
				return store.ErrGroupNotFound
			}
			log.Error("failed to link word to group",
				slog.String("error", err.Error()),
				slog.Int64("word_id", word.ID),
				slog.Int64("group_id", groupID))
			return err
		}
	}

	log.Info("word created successfully",
		slog.Int64("word_id", word.ID),
		slog.Int("group_links", len(groupIDs)))
	return nil
}

// GetByID implements store.WordStore.GetByID
// Returns store.ErrWordNotFound if the word does not exist.
func (s *WordStore) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, korean, transliteration, english, parts
		FROM words
		WHERE id = $1
	`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.Int64("word_id", id))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.Int64("word_id", id))
		return nil, err
	}

	return word, nil
}

// List implements store.WordStore.List
func (s *WordStore) List(ctx context.Context, limit, offset int) ([]*domain.Word, error) {
	query := `
		SELECT id, korean, transliteration, english, parts
		FROM words
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	return s.queryWords(ctx, query, limit, offset)
}

// ListByGroup implements store.WordStore.ListByGroup
func (s *WordStore) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*domain.Word, error) {
	query := `
		SELECT w.id, w.korean, w.transliteration, w.english, w.parts
		FROM words w
		JOIN words_groups wg ON wg.word_id = w.id
		WHERE wg.group_id = $1
		ORDER BY w.id
		LIMIT $2 OFFSET $3
	`
	return s.queryWords(ctx, query, groupID, limit, offset)
}

// Count implements store.WordStore.Count
func (s *WordStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByGroup implements store.WordStore.CountByGroup
func (s *WordStore) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM words_groups WHERE group_id = $1`,
		groupID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GroupsForWord implements store.WordStore.GroupsForWord
func (s *WordStore) GroupsForWord(ctx context.Context, wordID int64) ([]*domain.Group, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT g.id, g.name
		FROM groups g
		JOIN words_groups wg ON wg.group_id = g.id
		WHERE wg.word_id = $1
		ORDER BY g.id
	`

	rows, err := s.db.QueryContext(ctx, query, wordID)
	if err != nil {
		log.Error("failed to query groups for word",
			slog.String("error", err.Error()),
			slog.Int64("word_id", wordID))
		return nil, err
	}
	defer closeRows(rows, log)

	groups := []*domain.Group{}
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			log.Error("failed to scan group row", slog.String("error", err.Error()))
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return groups, nil
}

// queryWords runs a word query and scans the result rows.
func (s *WordStore) queryWords(ctx context.Context, query string, args ...any) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query words", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	words := []*domain.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row", slog.String("error", err.Error()))
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return words, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanWord scans one word row, unmarshalling the JSONB parts column.
func scanWord(row rowScanner) (*domain.Word, error) {
	var word domain.Word
	var parts []byte

	if err := row.Scan(&word.ID, &word.Korean, &word.Transliteration, &word.English, &parts); err != nil {
		return nil, err
	}

	word.Parts = map[string]any{}
	if len(parts) > 0 {
		if err := json.Unmarshal(parts, &word.Parts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal word parts: %w", err)
		}
	}

	return &word, nil
}

// closeRows closes a result set, logging a close failure.
func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
