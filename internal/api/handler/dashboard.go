// internal/api/handler/dashboard.go
package handler

import (
	"log/slog"
	"net/http"

	"fintrack/internal/service"
)

// DashboardHandler serves the per-user dashboard.
type DashboardHandler struct {
	base
	dashboards service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboards service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		base:       newBase(logger),
		dashboards: dashboards,
	}
}

// Get returns the dashboard of a user.
// GET /dashboard/{userId}
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handler.dashboard.Get"

	userID, err := idParam(r, "userId")
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	dashboard, err := h.dashboards.BuildDashboard(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, dashboard)
}
