package handler

import (
	"net/http"

	"github.com/leadcoach/leadcoach-api/internal/middleware"
	"github.com/leadcoach/leadcoach-api/internal/service"
)

// DashboardHandler обрабатывает эндпоинт сводки
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler создает новый DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard обрабатывает GET /dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	email := middleware.GetUserEmailFromContext(r.Context())

	dashboard, err := h.dashboardService.GetDashboard(r.Context(), userID, email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, dashboard)
}
