package api

import (
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/service"
)

// ActivityHandler handles study activity HTTP requests. Session creation
// lives here too: launching an activity against a group is what starts a
// session, so the original surface hangs it off the activities route.
type ActivityHandler struct {
	catalog  service.CatalogService
	sessions service.SessionService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(catalog service.CatalogService, sessions service.SessionService) *ActivityHandler {
	return &ActivityHandler{catalog: catalog, sessions: sessions}
}

// ListActivities handles GET /api/study_activities requests
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.catalog.ListActivities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list study activities")
		return
	}

	items := make([]ActivityListItem, 0, len(activities))
	for _, activity := range activities {
		items = append(items, ActivityListItem{
			ID:        activity.ID,
			Name:      activity.Name,
			Thumbnail: activity.Thumbnail,
			URL:       activity.URL,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ActivityListResponse{Items: items})
}

// GetActivity handles GET /api/study_activities/{activity_id} requests
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := getPathID(r, "activity_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	activity, err := h.catalog.GetActivity(r.Context(), activityID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get study activity")
		return
	}

	response := ActivityDetailResponse{
		ID:          activity.ID,
		Name:        activity.Name,
		Thumbnail:   activity.Thumbnail,
		Description: activity.Description,
		URL:         activity.URL,
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// ListActivitySessions handles GET /api/study_activities/{activity_id}/study_sessions requests
func (h *ActivityHandler) ListActivitySessions(w http.ResponseWriter, r *http.Request) {
	activityID, err := getPathID(r, "activity_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summaries, pageInfo, err := h.sessions.ListActivitySessions(r.Context(), activityID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list activity study sessions")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionListToResponse(summaries, pageInfo))
}

// CreateSession handles POST /api/study_activities requests. The group and
// activity references come in as query parameters, matching the original
// launch flow.
func (h *ActivityHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	groupID, err := getQueryID(r, "group_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	activityID, err := getQueryID(r, "study_activity_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.sessions.CreateSession(r.Context(), groupID, activityID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create study session")
		return
	}

	response := CreateSessionResponse{
		ID:      session.ID,
		GroupID: session.GroupID,
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}
