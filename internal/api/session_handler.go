package api

import (
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/service"
)

// SessionHandler handles study session HTTP requests
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// ListSessions handles GET /api/study_sessions requests
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summaries, pageInfo, err := h.sessions.ListSessions(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list study sessions")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionListToResponse(summaries, pageInfo))
}

// GetSession handles GET /api/study_session/{session_id} requests
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getPathID(r, "session_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summary, err := h.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get study session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionSummaryToResponse(*summary))
}

// ListSessionWords handles GET /api/study_session/{session_id}/words requests
func (h *SessionHandler) ListSessionWords(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getPathID(r, "session_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, pageInfo, err := h.sessions.ListSessionWords(r.Context(), sessionID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list session words")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordListToResponse(items, pageInfo))
}

// RecordReview handles POST /api/study_sessions/{session_id}/words/{word_id}/review requests
func (h *SessionHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getPathID(r, "session_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	wordID, err := getPathID(r, "word_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req RecordReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.sessions.RecordReview(r.Context(), sessionID, wordID, *req.Correct)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record review")
		return
	}

	response := ReviewResponse{
		Success:        true,
		WordID:         item.WordID,
		StudySessionID: item.StudySessionID,
		Correct:        item.Correct,
		CreatedAt:      formatTimestamp(item.CreatedAt),
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// EndSession handles POST /api/study_sessions/{session_id}/end requests
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getPathID(r, "session_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.sessions.EndSession(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to end study session")
		return
	}

	response := EndSessionResponse{
		Success:   true,
		SessionID: session.ID,
		EndedAt:   formatTimestamp(*session.EndedAt),
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// RecordReviewRequest represents the request body for recording a review.
// Correct is a pointer so an explicit false passes validation while a
// missing field does not.
type RecordReviewRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// sessionSummaryToResponse converts a composed session summary to its DTO.
func sessionSummaryToResponse(summary service.SessionSummary) SessionSummaryResponse {
	return SessionSummaryResponse{
		ID:               summary.ID,
		ActivityName:     summary.ActivityName,
		GroupName:        summary.GroupName,
		StartTime:        formatTimestamp(summary.StartTime),
		EndTime:          formatTimestamp(summary.EndTime),
		ReviewItemsCount: summary.ReviewItemsCount,
	}
}

// sessionListToResponse converts a page of session summaries to the listing DTO.
func sessionListToResponse(summaries []service.SessionSummary, pageInfo pagination.Page) SessionListResponse {
	items := make([]SessionSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, sessionSummaryToResponse(summary))
	}

	return SessionListResponse{Items: items, Pagination: pageInfo}
}
