package api

import (
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/service"
)

// GroupHandler handles group catalog HTTP requests
type GroupHandler struct {
	catalog  service.CatalogService
	sessions service.SessionService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(catalog service.CatalogService, sessions service.SessionService) *GroupHandler {
	return &GroupHandler{catalog: catalog, sessions: sessions}
}

// ListGroups handles GET /api/groups requests
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, pageInfo, err := h.catalog.ListGroups(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list groups")
		return
	}

	dtos := make([]GroupListItem, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, GroupListItem{
			ID:        item.Group.ID,
			Name:      item.Group.Name,
			WordCount: item.WordCount,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GroupListResponse{Items: dtos, Pagination: pageInfo})
}

// GetGroup handles GET /api/groups/{group_id} requests
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "group_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	group, err := h.catalog.GetGroup(r.Context(), groupID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get group")
		return
	}

	response := GroupDetailResponse{
		ID:    group.Group.ID,
		Name:  group.Group.Name,
		Stats: GroupStats{TotalWordCount: group.WordCount},
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// ListGroupWords handles GET /api/groups/{group_id}/words requests
func (h *GroupHandler) ListGroupWords(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "group_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, pageInfo, err := h.catalog.ListGroupWords(r.Context(), groupID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list group words")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordListToResponse(items, pageInfo))
}

// ListGroupSessions handles GET /api/groups/{group_id}/study_sessions requests
func (h *GroupHandler) ListGroupSessions(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "group_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summaries, pageInfo, err := h.sessions.ListGroupSessions(r.Context(), groupID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list group study sessions")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionListToResponse(summaries, pageInfo))
}
