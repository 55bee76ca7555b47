package api

import (
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/service"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// LastStudySession handles GET /api/dashboard/last_study_session requests
func (h *DashboardHandler) LastStudySession(w http.ResponseWriter, r *http.Request) {
	last, err := h.dashboard.LastSession(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get last study session")
		return
	}

	response := LastSessionResponse{
		ID:              last.ID,
		GroupID:         last.GroupID,
		StudyActivityID: last.StudyActivityID,
		GroupName:       last.GroupName,
		CreatedAt:       formatTimestamp(last.CreatedAt),
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// StudyProgress handles GET /api/dashboard/study_progress requests
func (h *DashboardHandler) StudyProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.dashboard.StudyProgress(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get study progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}

// QuickStats handles GET /api/dashboard/quick_stats requests
func (h *DashboardHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.QuickStats(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get quick stats")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
