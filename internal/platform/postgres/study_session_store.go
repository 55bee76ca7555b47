package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/store"
)

// StudySessionStore implements the store.StudySessionStore interface
// using a PostgreSQL database as the storage backend.
type StudySessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStudySessionStore creates a new PostgreSQL implementation of the
// StudySessionStore interface. If logger is nil, a default logger will be used.
func NewStudySessionStore(db store.DBTX, logger *slog.Logger) *StudySessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StudySessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_session_store")),
	}
}

// Ensure StudySessionStore implements store.StudySessionStore interface
var _ store.StudySessionStore = (*StudySessionStore)(nil)

// WithTx implements store.StudySessionStore.WithTx
func (s *StudySessionStore) WithTx(tx *sql.Tx) store.StudySessionStore {
	return &StudySessionStore{db: tx, logger: s.logger}
}

// Create implements store.StudySessionStore.Create
func (s *StudySessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("study session validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO study_sessions (group_id, study_activity_id, created_at, ended_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		session.GroupID,
		session.StudyActivityID,
		session.CreatedAt,
		session.EndedAt,
	).Scan(&session.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			// Backstop for the existence checks the service runs in the
			// same transaction; report the group as the likelier culprit.
			log.Warn("foreign key violation during session creation",
				slog.Int64("group_id", session.GroupID),
				slog.Int64("activity_id", session.StudyActivityID))
			return store.ErrGroupNotFound
		}
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.Int64("group_id", session.GroupID))
		return err
	}

	log.Info("study session created successfully",
		slog.Int64("session_id", session.ID),
		slog.Int64("group_id", session.GroupID),
		slog.Int64("activity_id", session.StudyActivityID))
	return nil
}

// GetByID implements store.StudySessionStore.GetByID
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *StudySessionStore) GetByID(ctx context.Context, id int64) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, group_id, study_activity_id, created_at, ended_at
		FROM study_sessions
		WHERE id = $1
	`

	session, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("study session not found", slog.Int64("session_id", id))
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get study session by ID",
			slog.String("error", err.Error()),
			slog.Int64("session_id", id))
		return nil, err
	}

	return session, nil
}

// List implements store.StudySessionStore.List
func (s *StudySessionStore) List(ctx context.Context, limit, offset int) ([]*domain.StudySession, error) {
	query := `
		SELECT id, group_id, study_activity_id, created_at, ended_at
		FROM study_sessions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	return s.querySessions(ctx, query, limit, offset)
}

// ListByGroup implements store.StudySessionStore.ListByGroup
func (s *StudySessionStore) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*domain.StudySession, error) {
	query := `
		SELECT id, group_id, study_activity_id, created_at, ended_at
		FROM study_sessions
		WHERE group_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	return s.querySessions(ctx, query, groupID, limit, offset)
}

// ListByActivity implements store.StudySessionStore.ListByActivity
func (s *StudySessionStore) ListByActivity(ctx context.Context, activityID int64, limit, offset int) ([]*domain.StudySession, error) {
	query := `
		SELECT id, group_id, study_activity_id, created_at, ended_at
		FROM study_sessions
		WHERE study_activity_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	return s.querySessions(ctx, query, activityID, limit, offset)
}

// Count implements store.StudySessionStore.Count
func (s *StudySessionStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_sessions`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByGroup implements store.StudySessionStore.CountByGroup
func (s *StudySessionStore) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM study_sessions WHERE group_id = $1`,
		groupID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByActivity implements store.StudySessionStore.CountByActivity
func (s *StudySessionStore) CountByActivity(ctx context.Context, activityID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM study_sessions WHERE study_activity_id = $1`,
		activityID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Last implements store.StudySessionStore.Last
// Ties on created_at break by ID descending so repeated reads agree.
func (s *StudySessionStore) Last(ctx context.Context) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, group_id, study_activity_id, created_at, ended_at
		FROM study_sessions
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	session, err := scanSession(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no study sessions recorded yet")
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get last study session", slog.String("error", err.Error()))
		return nil, err
	}

	return session, nil
}

// End implements store.StudySessionStore.End
// The update only matches an open session; when no row is affected a
// follow-up read distinguishes a missing session from an ended one.
func (s *StudySessionStore) End(ctx context.Context, id int64, endedAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE study_sessions
		SET ended_at = $1
		WHERE id = $2 AND ended_at IS NULL
	`

	result, err := s.db.ExecContext(ctx, query, endedAt, id)
	if err != nil {
		log.Error("failed to end study session",
			slog.String("error", err.Error()),
			slog.Int64("session_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("session_id", id))
		return err
	}

	if rowsAffected == 0 {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		log.Debug("study session already ended", slog.Int64("session_id", id))
		return store.ErrSessionAlreadyEnded
	}

	log.Info("study session ended",
		slog.Int64("session_id", id),
		slog.Time("ended_at", endedAt))
	return nil
}

// querySessions runs a session query and scans the result rows.
func (s *StudySessionStore) querySessions(ctx context.Context, query string, args ...any) ([]*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query study sessions", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	sessions := []*domain.StudySession{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			log.Error("failed to scan study session row", slog.String("error", err.Error()))
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return sessions, nil
}

// scanSession scans one session row, mapping the nullable ended_at column.
func scanSession(row rowScanner) (*domain.StudySession, error) {
	var session domain.StudySession
	var endedAt sql.NullTime

	err := row.Scan(
		&session.ID,
		&session.GroupID,
		&session.StudyActivityID,
		&session.CreatedAt,
		&endedAt,
	)
	if err != nil {
		return nil, err
	}

	if endedAt.Valid {
		t := endedAt.Time
		session.EndedAt = &t
	}

	return &session, nil
}
