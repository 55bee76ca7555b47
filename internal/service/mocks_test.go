package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"sync"
	"time"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/store"
	"github.com/stretchr/testify/mock"
)

// ---- fake sql driver ----
//
// The services open transactions through store.RunInTransaction, so the
// tests need a *sql.DB whose Begin/Commit/Rollback succeed without a real
// database. The stores themselves are testify mocks; the transaction
// handle is never dereferenced by them.

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return fakeConn{}, nil }

type fakeConn struct{}

func (fakeConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (fakeConn) Close() error                        { return nil }
func (fakeConn) Begin() (driver.Tx, error)           { return fakeTx{}, nil }

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

var registerFakeDriver sync.Once

// newFakeDB returns a *sql.DB backed by the no-op driver.
func newFakeDB() *sql.DB {
	registerFakeDriver.Do(func() {
		sql.Register("servicetest", fakeDriver{})
	})
	db, err := sql.Open("servicetest", "")
	if err != nil {
		panic(err)
	}
	return db
}

// ---- store mocks ----

type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) Create(ctx context.Context, word *domain.Word, groupIDs []int64) error {
	args := m.Called(ctx, word, groupIDs)
	return args.Error(0)
}

func (m *MockWordStore) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	args := m.Called(ctx, id)
	word, _ := args.Get(0).(*domain.Word)
	return word, args.Error(1)
}

func (m *MockWordStore) List(ctx context.Context, limit, offset int) ([]*domain.Word, error) {
	args := m.Called(ctx, limit, offset)
	words, _ := args.Get(0).([]*domain.Word)
	return words, args.Error(1)
}

func (m *MockWordStore) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*domain.Word, error) {
	args := m.Called(ctx, groupID, limit, offset)
	words, _ := args.Get(0).([]*domain.Word)
	return words, args.Error(1)
}

func (m *MockWordStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWordStore) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordStore) GroupsForWord(ctx context.Context, wordID int64) ([]*domain.Group, error) {
	args := m.Called(ctx, wordID)
	groups, _ := args.Get(0).([]*domain.Group)
	return groups, args.Error(1)
}

func (m *MockWordStore) WithTx(tx *sql.Tx) store.WordStore { return m }

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupStore) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	args := m.Called(ctx, id)
	group, _ := args.Get(0).(*domain.Group)
	return group, args.Error(1)
}

func (m *MockGroupStore) List(ctx context.Context, limit, offset int) ([]*domain.Group, error) {
	args := m.Called(ctx, limit, offset)
	groups, _ := args.Get(0).([]*domain.Group)
	return groups, args.Error(1)
}

func (m *MockGroupStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupStore) WithTx(tx *sql.Tx) store.GroupStore { return m }

type MockStudyActivityStore struct {
	mock.Mock
}

func (m *MockStudyActivityStore) Create(ctx context.Context, activity *domain.StudyActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockStudyActivityStore) GetByID(ctx context.Context, id int64) (*domain.StudyActivity, error) {
	args := m.Called(ctx, id)
	activity, _ := args.Get(0).(*domain.StudyActivity)
	return activity, args.Error(1)
}

func (m *MockStudyActivityStore) List(ctx context.Context) ([]*domain.StudyActivity, error) {
	args := m.Called(ctx)
	activities, _ := args.Get(0).([]*domain.StudyActivity)
	return activities, args.Error(1)
}

func (m *MockStudyActivityStore) WithTx(tx *sql.Tx) store.StudyActivityStore { return m }

type MockStudySessionStore struct {
	mock.Mock
}

func (m *MockStudySessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStudySessionStore) GetByID(ctx context.Context, id int64) (*domain.StudySession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.StudySession)
	return session, args.Error(1)
}

func (m *MockStudySessionStore) List(ctx context.Context, limit, offset int) ([]*domain.StudySession, error) {
	args := m.Called(ctx, limit, offset)
	sessions, _ := args.Get(0).([]*domain.StudySession)
	return sessions, args.Error(1)
}

func (m *MockStudySessionStore) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*domain.StudySession, error) {
	args := m.Called(ctx, groupID, limit, offset)
	sessions, _ := args.Get(0).([]*domain.StudySession)
	return sessions, args.Error(1)
}

func (m *MockStudySessionStore) ListByActivity(ctx context.Context, activityID int64, limit, offset int) ([]*domain.StudySession, error) {
	args := m.Called(ctx, activityID, limit, offset)
	sessions, _ := args.Get(0).([]*domain.StudySession)
	return sessions, args.Error(1)
}

func (m *MockStudySessionStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionStore) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionStore) CountByActivity(ctx context.Context, activityID int64) (int, error) {
	args := m.Called(ctx, activityID)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionStore) Last(ctx context.Context) (*domain.StudySession, error) {
	args := m.Called(ctx)
	session, _ := args.Get(0).(*domain.StudySession)
	return session, args.Error(1)
}

func (m *MockStudySessionStore) End(ctx context.Context, id int64, endedAt time.Time) error {
	args := m.Called(ctx, id, endedAt)
	return args.Error(0)
}

func (m *MockStudySessionStore) WithTx(tx *sql.Tx) store.StudySessionStore { return m }

type MockWordReviewStore struct {
	mock.Mock
}

func (m *MockWordReviewStore) Create(ctx context.Context, item *domain.WordReviewItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWordReviewStore) WithTx(tx *sql.Tx) store.WordReviewStore { return m }

type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) WordStats(ctx context.Context, wordID int64) (store.WordStats, error) {
	args := m.Called(ctx, wordID)
	stats, _ := args.Get(0).(store.WordStats)
	return stats, args.Error(1)
}

func (m *MockStatsStore) SessionReviewCount(ctx context.Context, sessionID int64) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsStore) StudyProgress(ctx context.Context) (store.StudyProgress, error) {
	args := m.Called(ctx)
	progress, _ := args.Get(0).(store.StudyProgress)
	return progress, args.Error(1)
}

func (m *MockStatsStore) QuickStats(ctx context.Context) (store.QuickStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(store.QuickStats)
	return stats, args.Error(1)
}

type MockResetStore struct {
	mock.Mock
}

func (m *MockResetStore) ResetHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResetStore) FullReset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResetStore) WithTx(tx *sql.Tx) store.ResetStore { return m }
