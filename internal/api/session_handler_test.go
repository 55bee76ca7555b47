package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/service"
	"github.com/phrazzld/lang-portal/internal/store"
)

func newSessionRouter(sessions service.SessionService) http.Handler {
	handler := NewSessionHandler(sessions)
	activityHandler := NewActivityHandler(nil, sessions)
	r := chi.NewRouter()
	r.Post("/api/study_activities", activityHandler.CreateSession)
	r.Get("/api/study_sessions", handler.ListSessions)
	r.Get("/api/study_session/{session_id}", handler.GetSession)
	r.Get("/api/study_session/{session_id}/words", handler.ListSessionWords)
	r.Post("/api/study_sessions/{session_id}/words/{word_id}/review", handler.RecordReview)
	r.Post("/api/study_sessions/{session_id}/end", handler.EndSession)
	return r
}

func TestCreateSessionHandler(t *testing.T) {
	t.Parallel()

	t.Run("creates a session from query parameters", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)
		sessions.On("CreateSession", mock.Anything, int64(7), int64(3)).Return(
			&domain.StudySession{ID: 42, GroupID: 7, StudyActivityID: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/study_activities?group_id=7&study_activity_id=3", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp CreateSessionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, int64(7), resp.GroupID)
	})

	t.Run("returns 404 when the group does not exist", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)
		sessions.On("CreateSession", mock.Anything, int64(7), int64(3)).Return(
			nil, store.ErrGroupNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/study_activities?group_id=7&study_activity_id=3", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("returns 400 when group_id is missing", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)

		req := httptest.NewRequest(http.MethodPost, "/api/study_activities?study_activity_id=3", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRecordReviewHandler(t *testing.T) {
	t.Parallel()

	t.Run("records a review and echoes the outcome", func(t *testing.T) {
		t.Parallel()
		createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
		sessions := new(MockSessionService)
		sessions.On("RecordReview", mock.Anything, int64(42), int64(5), true).Return(
			&domain.WordReviewItem{ID: 1, WordID: 5, StudySessionID: 42, Correct: true, CreatedAt: createdAt}, nil)

		body := strings.NewReader(`{"correct": true}`)
		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/42/words/5/review", body)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp ReviewResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(5), resp.WordID)
		assert.Equal(t, int64(42), resp.StudySessionID)
		assert.True(t, resp.Correct)
		assert.Equal(t, "2025-03-14T09:30:00Z", resp.CreatedAt)
	})

	t.Run("returns 404 when the session does not exist", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)
		sessions.On("RecordReview", mock.Anything, int64(99), int64(5), false).Return(
			nil, store.ErrSessionNotFound)

		body := strings.NewReader(`{"correct": false}`)
		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/99/words/5/review", body)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("returns 400 for a malformed body", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)

		body := strings.NewReader(`{correct}`)
		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/42/words/5/review", body)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		sessions.AssertNotCalled(t, "RecordReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns 400 when the correct field is missing", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)

		body := strings.NewReader(`{}`)
		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/42/words/5/review", body)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Validation error")
		sessions.AssertNotCalled(t, "RecordReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("accepts an explicit false outcome", func(t *testing.T) {
		t.Parallel()
		createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
		sessions := new(MockSessionService)
		sessions.On("RecordReview", mock.Anything, int64(42), int64(5), false).Return(
			&domain.WordReviewItem{ID: 2, WordID: 5, StudySessionID: 42, Correct: false, CreatedAt: createdAt}, nil)

		body := strings.NewReader(`{"correct": false}`)
		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/42/words/5/review", body)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		sessions.AssertExpectations(t)
	})
}

func TestEndSessionHandler(t *testing.T) {
	t.Parallel()

	t.Run("terminates the session and reports ended_at", func(t *testing.T) {
		t.Parallel()
		endedAt := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
		sessions := new(MockSessionService)
		sessions.On("EndSession", mock.Anything, int64(42)).Return(
			&domain.StudySession{ID: 42, GroupID: 7, StudyActivityID: 3, EndedAt: &endedAt}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/42/end", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp EndSessionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(42), resp.SessionID)
		assert.Equal(t, "2025-03-14T10:00:00Z", resp.EndedAt)
	})

	t.Run("returns 400 when the session already ended", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)
		sessions.On("EndSession", mock.Anything, int64(42)).Return(
			nil, store.ErrSessionAlreadyEnded)

		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/42/end", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Study session already ended", resp["error"])
	})

	t.Run("returns 404 for a missing session", func(t *testing.T) {
		t.Parallel()
		sessions := new(MockSessionService)
		sessions.On("EndSession", mock.Anything, int64(99)).Return(
			nil, store.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/study_sessions/99/end", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetSessionHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders the composed summary", func(t *testing.T) {
		t.Parallel()
		start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
		sessions := new(MockSessionService)
		sessions.On("GetSession", mock.Anything, int64(42)).Return(&service.SessionSummary{
			ID:               42,
			ActivityName:     "Flashcards",
			GroupName:        "Numbers",
			StartTime:        start,
			EndTime:          start.Add(10 * time.Minute),
			ReviewItemsCount: 8,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/study_session/42", nil)
		rr := httptest.NewRecorder()
		newSessionRouter(sessions).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp SessionSummaryResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Flashcards", resp.ActivityName)
		assert.Equal(t, "Numbers", resp.GroupName)
		assert.Equal(t, "2025-03-14T09:00:00Z", resp.StartTime)
		assert.Equal(t, "2025-03-14T09:10:00Z", resp.EndTime)
		assert.Equal(t, 8, resp.ReviewItemsCount)
	})
}

func TestListSessionsHandler(t *testing.T) {
	t.Parallel()

	sessions := new(MockSessionService)
	sessions.On("ListSessions", mock.Anything, 1).Return(
		[]service.SessionSummary{}, pagination.New(1, 0, pagination.SessionsPageSize), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/study_sessions", nil)
	rr := httptest.NewRecorder()
	newSessionRouter(sessions).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp SessionListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}
