package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/lang-portal/internal/store"
)

// LastSession is the dashboard view of the most recent study session.
type LastSession struct {
	ID              int64
	GroupID         int64
	StudyActivityID int64
	GroupName       string
	CreatedAt       time.Time
}

// DashboardService exposes the dashboard aggregates. All values are
// computed from the live rows on every call; with no intervening writes,
// repeated reads return identical results.
type DashboardService interface {
	// LastSession returns the session with the latest created_at, ties
	// broken by ID descending. Returns store.ErrSessionNotFound when no
	// sessions exist.
	LastSession(ctx context.Context) (*LastSession, error)

	// StudyProgress returns the distinct-words-reviewed / total-words pair.
	StudyProgress(ctx context.Context) (store.StudyProgress, error)

	// QuickStats returns the overview numbers.
	QuickStats(ctx context.Context) (store.QuickStats, error)
}

// dashboardService is the production DashboardService implementation.
type dashboardService struct {
	sessions store.StudySessionStore
	groups   store.GroupStore
	stats    store.StatsStore
	logger   *slog.Logger
}

// NewDashboardService creates a DashboardService over the given stores.
// If logger is nil, a default logger will be used.
func NewDashboardService(
	sessions store.StudySessionStore,
	groups store.GroupStore,
	stats store.StatsStore,
	logger *slog.Logger,
) DashboardService {
	if logger == nil {
		logger = slog.Default()
	}

	return &dashboardService{
		sessions: sessions,
		groups:   groups,
		stats:    stats,
		logger:   logger.With(slog.String("component", "dashboard_service")),
	}
}

// LastSession implements DashboardService.LastSession
func (s *dashboardService) LastSession(ctx context.Context) (*LastSession, error) {
	session, err := s.sessions.Last(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.groups.GetByID(ctx, session.GroupID)
	if err != nil {
		return nil, newError("last_session", "failed to resolve session group", err)
	}

	return &LastSession{
		ID:              session.ID,
		GroupID:         session.GroupID,
		StudyActivityID: session.StudyActivityID,
		GroupName:       group.Name,
		CreatedAt:       session.CreatedAt,
	}, nil
}

// StudyProgress implements DashboardService.StudyProgress
func (s *dashboardService) StudyProgress(ctx context.Context) (store.StudyProgress, error) {
	progress, err := s.stats.StudyProgress(ctx)
	if err != nil {
		return store.StudyProgress{}, newError("study_progress", "failed to compute study progress", err)
	}
	return progress, nil
}

// QuickStats implements DashboardService.QuickStats
func (s *dashboardService) QuickStats(ctx context.Context) (store.QuickStats, error) {
	stats, err := s.stats.QuickStats(ctx)
	if err != nil {
		return store.QuickStats{}, newError("quick_stats", "failed to compute quick stats", err)
	}
	return stats, nil
}
