package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"homeroster/internal/household"
)

type HouseholdHandler struct {
	svc    *household.Service
	logger *slog.Logger
}

func NewHouseholdHandler(svc *household.Service, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{svc: svc, logger: logger}
}

// Overview returns the derived household view. A roster with zero
// members is "no household", not an empty one.
func (h *HouseholdHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview()
	if errors.Is(err, household.ErrNoHousehold) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No household found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to fetch household overview", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch household overview",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
