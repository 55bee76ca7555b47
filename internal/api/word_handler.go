package api

import (
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/service"
)

// WordHandler handles word catalog HTTP requests
type WordHandler struct {
	catalog service.CatalogService
}

// NewWordHandler creates a new WordHandler
func NewWordHandler(catalog service.CatalogService) *WordHandler {
	return &WordHandler{catalog: catalog}
}

// ListWords handles GET /api/words requests
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, pageInfo, err := h.catalog.ListWords(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list words")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordListToResponse(items, pageInfo))
}

// GetWord handles GET /api/words/{word_id} requests
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	wordID, err := getPathID(r, "word_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.catalog.GetWord(r.Context(), wordID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get word")
		return
	}

	groups := make([]GroupRef, 0, len(detail.Groups))
	for _, group := range detail.Groups {
		groups = append(groups, GroupRef{ID: group.ID, Name: group.Name})
	}

	response := WordDetailResponse{
		ID:              detail.Word.ID,
		Korean:          detail.Word.Korean,
		Transliteration: detail.Word.Transliteration,
		English:         detail.Word.English,
		Stats:           detail.Stats,
		Groups:          groups,
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// wordListToResponse converts a page of words with stats to the listing DTO.
func wordListToResponse(items []service.WordWithStats, pageInfo pagination.Page) WordListResponse {
	dtos := make([]WordListItem, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, WordListItem{
			ID:              item.Word.ID,
			Korean:          item.Word.Korean,
			Transliteration: item.Word.Transliteration,
			English:         item.Word.English,
			CorrectCount:    item.Stats.CorrectCount,
			WrongCount:      item.Stats.WrongCount,
		})
	}

	return WordListResponse{Items: dtos, Pagination: pageInfo}
}
