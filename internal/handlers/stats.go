package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dhruv435/slugma-admin/internal/store"
)

type StatsHandler struct {
	Store *store.Store
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.GetDashboardStats()
	if err != nil {
		slog.Error("Failed to fetch stats", "error", err)
		respondError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
