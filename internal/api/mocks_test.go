package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/service"
	"github.com/phrazzld/lang-portal/internal/store"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListWords(ctx context.Context, page int) ([]service.WordWithStats, pagination.Page, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]service.WordWithStats)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return items, pageInfo, args.Error(2)
}

func (m *MockCatalogService) GetWord(ctx context.Context, wordID int64) (*service.WordDetail, error) {
	args := m.Called(ctx, wordID)
	detail, _ := args.Get(0).(*service.WordDetail)
	return detail, args.Error(1)
}

func (m *MockCatalogService) ListGroups(ctx context.Context, page int) ([]service.GroupWithCount, pagination.Page, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]service.GroupWithCount)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return items, pageInfo, args.Error(2)
}

func (m *MockCatalogService) GetGroup(ctx context.Context, groupID int64) (*service.GroupWithCount, error) {
	args := m.Called(ctx, groupID)
	group, _ := args.Get(0).(*service.GroupWithCount)
	return group, args.Error(1)
}

func (m *MockCatalogService) ListGroupWords(ctx context.Context, groupID int64, page int) ([]service.WordWithStats, pagination.Page, error) {
	args := m.Called(ctx, groupID, page)
	items, _ := args.Get(0).([]service.WordWithStats)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return items, pageInfo, args.Error(2)
}

func (m *MockCatalogService) ListActivities(ctx context.Context) ([]*domain.StudyActivity, error) {
	args := m.Called(ctx)
	activities, _ := args.Get(0).([]*domain.StudyActivity)
	return activities, args.Error(1)
}

func (m *MockCatalogService) GetActivity(ctx context.Context, activityID int64) (*domain.StudyActivity, error) {
	args := m.Called(ctx, activityID)
	activity, _ := args.Get(0).(*domain.StudyActivity)
	return activity, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, groupID, activityID int64) (*domain.StudySession, error) {
	args := m.Called(ctx, groupID, activityID)
	session, _ := args.Get(0).(*domain.StudySession)
	return session, args.Error(1)
}

func (m *MockSessionService) EndSession(ctx context.Context, sessionID int64) (*domain.StudySession, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*domain.StudySession)
	return session, args.Error(1)
}

func (m *MockSessionService) RecordReview(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.WordReviewItem, error) {
	args := m.Called(ctx, sessionID, wordID, correct)
	item, _ := args.Get(0).(*domain.WordReviewItem)
	return item, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID int64) (*service.SessionSummary, error) {
	args := m.Called(ctx, sessionID)
	summary, _ := args.Get(0).(*service.SessionSummary)
	return summary, args.Error(1)
}

func (m *MockSessionService) ListSessions(ctx context.Context, page int) ([]service.SessionSummary, pagination.Page, error) {
	args := m.Called(ctx, page)
	summaries, _ := args.Get(0).([]service.SessionSummary)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return summaries, pageInfo, args.Error(2)
}

func (m *MockSessionService) ListGroupSessions(ctx context.Context, groupID int64, page int) ([]service.SessionSummary, pagination.Page, error) {
	args := m.Called(ctx, groupID, page)
	summaries, _ := args.Get(0).([]service.SessionSummary)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return summaries, pageInfo, args.Error(2)
}

func (m *MockSessionService) ListActivitySessions(ctx context.Context, activityID int64, page int) ([]service.SessionSummary, pagination.Page, error) {
	args := m.Called(ctx, activityID, page)
	summaries, _ := args.Get(0).([]service.SessionSummary)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return summaries, pageInfo, args.Error(2)
}

func (m *MockSessionService) ListSessionWords(ctx context.Context, sessionID int64, page int) ([]service.WordWithStats, pagination.Page, error) {
	args := m.Called(ctx, sessionID, page)
	items, _ := args.Get(0).([]service.WordWithStats)
	pageInfo, _ := args.Get(1).(pagination.Page)
	return items, pageInfo, args.Error(2)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) LastSession(ctx context.Context) (*service.LastSession, error) {
	args := m.Called(ctx)
	last, _ := args.Get(0).(*service.LastSession)
	return last, args.Error(1)
}

func (m *MockDashboardService) StudyProgress(ctx context.Context) (store.StudyProgress, error) {
	args := m.Called(ctx)
	progress, _ := args.Get(0).(store.StudyProgress)
	return progress, args.Error(1)
}

func (m *MockDashboardService) QuickStats(ctx context.Context) (store.QuickStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(store.QuickStats)
	return stats, args.Error(1)
}

type MockResetService struct {
	mock.Mock
}

func (m *MockResetService) ResetHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResetService) FullReset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
