package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/services"
)

// UsersController handles the forum user listing
type UsersController struct {
	services *services.Services
	view     *renderer
}

// NewUsersController creates a new users controller
func NewUsersController(services *services.Services, view *renderer) *UsersController {
	return &UsersController{
		services: services,
		view:     view,
	}
}

// Index handles GET /users
func (c *UsersController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.Stats.ListUsers(r.Context())
	if err != nil {
		slog.Error("failed to load users", "error", err)
		c.view.renderError(w, http.StatusInternalServerError, "users", "Failed to load users", "/")
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Users       []models.UserSummary
	}{
		Title:       "Users",
		CurrentPage: "users",
		Users:       users,
	}

	c.view.render(w, "users.html", templateData)
}
