package api

import (
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/service"
)

// ResetHandler handles the bulk deletion HTTP requests
type ResetHandler struct {
	resets service.ResetService
}

// NewResetHandler creates a new ResetHandler
func NewResetHandler(resets service.ResetService) *ResetHandler {
	return &ResetHandler{resets: resets}
}

// ResetHistory handles POST /api/reset/history requests
func (h *ResetHandler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.resets.ResetHistory(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to reset study history")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ResetResponse{
		Success: true,
		Message: "Study history reset successfully",
	})
}

// FullReset handles POST /api/full_reset requests
func (h *ResetHandler) FullReset(w http.ResponseWriter, r *http.Request) {
	if err := h.resets.FullReset(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to perform full reset")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ResetResponse{
		Success: true,
		Message: "Full reset completed successfully",
	})
}
