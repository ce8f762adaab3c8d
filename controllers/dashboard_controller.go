package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/forum-admin/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	view     *renderer
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, view *renderer) *DashboardController {
	return &DashboardController{
		services: services,
		view:     view,
	}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Stats.GetDashboardData(r.Context())
	if err != nil {
		slog.Error("failed to load dashboard", "error", err)
		c.view.renderError(w, http.StatusInternalServerError, "dashboard", "Failed to load dashboard data", "/")
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Data        *services.DashboardData
	}{
		Title:       "Dashboard",
		CurrentPage: "dashboard",
		Data:        data,
	}

	c.view.render(w, "dashboard.html", templateData)
}
