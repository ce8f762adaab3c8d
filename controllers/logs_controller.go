package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/forum-admin/services"
)

// LogsController handles the access log view
type LogsController struct {
	services *services.Services
	view     *renderer
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services, view *renderer) *LogsController {
	return &LogsController{
		services: services,
		view:     view,
	}
}

// Index handles GET /logs
func (c *LogsController) Index(w http.ResponseWriter, r *http.Request) {
	report, err := c.services.Stats.GetAccessReport(r.Context())
	if err != nil {
		slog.Error("failed to load access logs", "error", err)
		c.view.renderError(w, http.StatusInternalServerError, "logs", "Failed to load access logs", "/")
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Report      *services.AccessReport
	}{
		Title:       "Access Logs",
		CurrentPage: "logs",
		Report:      report,
	}

	c.view.render(w, "logs.html", templateData)
}
