package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/store"
)

// SessionSummary is the human-facing record composed for every session in
// list and detail views. EndTime is the stored ended_at for a terminated
// session; for a session that is still open it is the wall-clock time at
// query time, so repeated reads of an open session move forward. That
// matches the public contract even though it is not idempotent.
type SessionSummary struct {
	ID               int64
	ActivityName     string
	GroupName        string
	StartTime        time.Time
	EndTime          time.Time
	ReviewItemsCount int
}

// SessionService manages the study session lifecycle and review recording.
type SessionService interface {
	// CreateSession starts a new open session for the group/activity pair.
	// Returns store.ErrGroupNotFound or store.ErrActivityNotFound when a
	// reference does not resolve; both checks run in the same transaction
	// as the insert.
	CreateSession(ctx context.Context, groupID, activityID int64) (*domain.StudySession, error)

	// EndSession terminates an open session, setting ended_at to now.
	// Returns store.ErrSessionNotFound or store.ErrSessionAlreadyEnded.
	EndSession(ctx context.Context, sessionID int64) (*domain.StudySession, error)

	// RecordReview appends one review outcome. The session does not have to
	// be open: recording against an ended session is allowed. Returns
	// store.ErrSessionNotFound or store.ErrWordNotFound when a reference is
	// missing; no review row is created in that case.
	RecordReview(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.WordReviewItem, error)

	// GetSession returns the composed summary for one session.
	GetSession(ctx context.Context, sessionID int64) (*SessionSummary, error)

	// ListSessions returns one page of session summaries across all groups.
	ListSessions(ctx context.Context, page int) ([]SessionSummary, pagination.Page, error)

	// ListGroupSessions returns one page of summaries for the group's sessions.
	// Returns store.ErrGroupNotFound if the group does not exist.
	ListGroupSessions(ctx context.Context, groupID int64, page int) ([]SessionSummary, pagination.Page, error)

	// ListActivitySessions returns one page of summaries for the activity's sessions.
	ListActivitySessions(ctx context.Context, activityID int64, page int) ([]SessionSummary, pagination.Page, error)

	// ListSessionWords returns one page of the session's words (the words of
	// the session's group) with their review stats.
	// Returns store.ErrSessionNotFound if the session does not exist.
	ListSessionWords(ctx context.Context, sessionID int64, page int) ([]WordWithStats, pagination.Page, error)
}

// sessionService is the production SessionService implementation.
type sessionService struct {
	db         *sql.DB
	sessions   store.StudySessionStore
	groups     store.GroupStore
	activities store.StudyActivityStore
	words      store.WordStore
	reviews    store.WordReviewStore
	stats      store.StatsStore
	logger     *slog.Logger
	now        func() time.Time
}

// NewSessionService creates a SessionService over the given stores.
// The db handle is used for the transactions that existence checks and
// writes share. If logger is nil, a default logger will be used.
func NewSessionService(
	db *sql.DB,
	sessions store.StudySessionStore,
	groups store.GroupStore,
	activities store.StudyActivityStore,
	words store.WordStore,
	reviews store.WordReviewStore,
	stats store.StatsStore,
	logger *slog.Logger,
) SessionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &sessionService{
		db:         db,
		sessions:   sessions,
		groups:     groups,
		activities: activities,
		words:      words,
		reviews:    reviews,
		stats:      stats,
		logger:     logger.With(slog.String("component", "session_service")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession implements SessionService.CreateSession
func (s *sessionService) CreateSession(ctx context.Context, groupID, activityID int64) (*domain.StudySession, error) {
	session, err := domain.NewStudySession(groupID, activityID)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.groups.WithTx(tx).GetByID(ctx, groupID); err != nil {
			return err
		}
		if _, err := s.activities.WithTx(tx).GetByID(ctx, activityID); err != nil {
			return err
		}
		return s.sessions.WithTx(tx).Create(ctx, session)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, newError("create_session", "failed to create study session", err)
	}

	return session, nil
}

// EndSession implements SessionService.EndSession
func (s *sessionService) EndSession(ctx context.Context, sessionID int64) (*domain.StudySession, error) {
	var session *domain.StudySession

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txSessions := s.sessions.WithTx(tx)
		if err := txSessions.End(ctx, sessionID, s.now()); err != nil {
			return err
		}
		ended, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		session = ended
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, store.ErrSessionAlreadyEnded) {
			return nil, err
		}
		return nil, newError("end_session", "failed to end study session", err)
	}

	return session, nil
}

// RecordReview implements SessionService.RecordReview
func (s *sessionService) RecordReview(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.WordReviewItem, error) {
	item, err := domain.NewWordReviewItem(wordID, sessionID, correct)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		// Existence only; an ended session still accepts reviews
		if _, err := s.sessions.WithTx(tx).GetByID(ctx, sessionID); err != nil {
			return err
		}
		if _, err := s.words.WithTx(tx).GetByID(ctx, wordID); err != nil {
			return err
		}
		return s.reviews.WithTx(tx).Create(ctx, item)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, newError("record_review", "failed to record review", err)
	}

	return item, nil
}

// GetSession implements SessionService.GetSession
func (s *sessionService) GetSession(ctx context.Context, sessionID int64) (*SessionSummary, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, session)
	if err != nil {
		return nil, newError("get_session", "failed to compose session summary", err)
	}
	return summary, nil
}

// ListSessions implements SessionService.ListSessions
func (s *sessionService) ListSessions(ctx context.Context, page int) ([]SessionSummary, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	total, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, pagination.Page{}, newError("list_sessions", "failed to count sessions", err)
	}

	perPage := pagination.SessionsPageSize
	sessions, err := s.sessions.List(ctx, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_sessions", "failed to list sessions", err)
	}

	summaries, err := s.summarizeAll(ctx, sessions)
	if err != nil {
		return nil, pagination.Page{}, newError("list_sessions", "failed to compose session summaries", err)
	}

	return summaries, pagination.New(page, total, perPage), nil
}

// ListGroupSessions implements SessionService.ListGroupSessions
func (s *sessionService) ListGroupSessions(ctx context.Context, groupID int64, page int) ([]SessionSummary, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, pagination.Page{}, err
	}

	total, err := s.sessions.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, pagination.Page{}, newError("list_group_sessions", "failed to count sessions", err)
	}

	perPage := pagination.GroupSessionsPageSize
	sessions, err := s.sessions.ListByGroup(ctx, groupID, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_group_sessions", "failed to list sessions", err)
	}

	summaries, err := s.summarizeAll(ctx, sessions)
	if err != nil {
		return nil, pagination.Page{}, newError("list_group_sessions", "failed to compose session summaries", err)
	}

	return summaries, pagination.New(page, total, perPage), nil
}

// ListActivitySessions implements SessionService.ListActivitySessions
func (s *sessionService) ListActivitySessions(ctx context.Context, activityID int64, page int) ([]SessionSummary, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	total, err := s.sessions.CountByActivity(ctx, activityID)
	if err != nil {
		return nil, pagination.Page{}, newError("list_activity_sessions", "failed to count sessions", err)
	}

	perPage := pagination.GroupSessionsPageSize
	sessions, err := s.sessions.ListByActivity(ctx, activityID, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_activity_sessions", "failed to list sessions", err)
	}

	summaries, err := s.summarizeAll(ctx, sessions)
	if err != nil {
		return nil, pagination.Page{}, newError("list_activity_sessions", "failed to compose session summaries", err)
	}

	return summaries, pagination.New(page, total, perPage), nil
}

// ListSessionWords implements SessionService.ListSessionWords
// The words of a session are the words of its group, with review stats.
func (s *sessionService) ListSessionWords(ctx context.Context, sessionID int64, page int) ([]WordWithStats, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	total, err := s.words.CountByGroup(ctx, session.GroupID)
	if err != nil {
		return nil, pagination.Page{}, newError("list_session_words", "failed to count words", err)
	}

	perPage := pagination.WordsPageSize
	words, err := s.words.ListByGroup(ctx, session.GroupID, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_session_words", "failed to list words", err)
	}

	items, err := attachWordStats(ctx, s.stats, words)
	if err != nil {
		return nil, pagination.Page{}, newError("list_session_words", "failed to compose word stats", err)
	}

	return items, pagination.New(page, total, perPage), nil
}

// summarize composes the human-facing record for one session by following
// its fixed group and activity references.
func (s *sessionService) summarize(ctx context.Context, session *domain.StudySession) (*SessionSummary, error) {
	group, err := s.groups.GetByID(ctx, session.GroupID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activities.GetByID(ctx, session.StudyActivityID)
	if err != nil {
		return nil, err
	}

	reviewCount, err := s.stats.SessionReviewCount(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	endTime := s.now()
	if session.EndedAt != nil {
		endTime = *session.EndedAt
	}

	return &SessionSummary{
		ID:               session.ID,
		ActivityName:     activity.Name,
		GroupName:        group.Name,
		StartTime:        session.CreatedAt,
		EndTime:          endTime,
		ReviewItemsCount: reviewCount,
	}, nil
}

// summarizeAll composes summaries for a page of sessions.
func (s *sessionService) summarizeAll(ctx context.Context, sessions []*domain.StudySession) ([]SessionSummary, error) {
	summaries := make([]SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summary, err := s.summarize(ctx, session)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}
