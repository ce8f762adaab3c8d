package controllers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"gitea.com/go-chi/session"

	"github.com/blogem/forum-admin/authenticator"
	"github.com/blogem/forum-admin/middleware"
	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/services"
	"github.com/blogem/forum-admin/templates"
)

// renderer renders page templates inside the shared layout. Times are
// shown in loc.
type renderer struct {
	loc *time.Location
}

func newRenderer(loc *time.Location) *renderer {
	if loc == nil {
		loc = time.Local
	}
	return &renderer{loc: loc}
}

// render renders a page with status 200
func (v *renderer) render(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	return v.renderWithStatus(w, http.StatusOK, pageTemplate, data)
}

// renderWithStatus creates a template set with the layout and one page and
// renders it with the provided status code
func (v *renderer) renderWithStatus(w http.ResponseWriter, statusCode int, pageTemplate string, data interface{}) error {
	tmpl := template.New(pageTemplate)
	tmpl.Funcs(template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"truncate": models.Truncate,
		"date": func(t time.Time) string {
			return models.FormatDate(t.In(v.loc))
		},
		"datetime": func(t time.Time) string {
			return models.FormatDateTime(t.In(v.loc))
		},
	})

	// Parse layout and page template
	_, err := tmpl.ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		slog.Error("failed to parse template", "template", pageTemplate, "error", err)
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render into a buffer so a failing template never sends a partial page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("failed to render template", "template", pageTemplate, "error", err)
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// setFlash keeps a message in the session for the next page render
func setFlash(r *http.Request, flash models.FlashMessage) {
	if err := session.GetSession(r).Set(middleware.SessionFlash, flash); err != nil {
		slog.Error("failed to store flash message", "error", err)
	}
}

// popFlash returns the pending flash message, if any, and clears it
func popFlash(r *http.Request) (models.FlashMessage, bool) {
	sess := session.GetSession(r)
	flash, ok := sess.Get(middleware.SessionFlash).(models.FlashMessage)
	if ok {
		sess.Delete(middleware.SessionFlash)
	}
	return flash, ok
}

// renderError renders the generic error page
func (v *renderer) renderError(w http.ResponseWriter, statusCode int, currentPage, message, back string) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Message     string
		Back        string
	}{
		Title:       "Error",
		CurrentPage: currentPage,
		Message:     message,
		Back:        back,
	}

	v.renderWithStatus(w, statusCode, "error.html", templateData)
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}

// writeJSONError writes the {"error": message} body used by every JSON endpoint
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Contacts  *ContactsController
	Logs      *LogsController
	Users     *UsersController
	API       *APIController
}

// NewControllers creates and initializes all controller instances. provider
// may be nil when single sign-on is not configured.
func NewControllers(services *services.Services, provider authenticator.Provider, loc *time.Location) *Controllers {
	view := newRenderer(loc)
	return &Controllers{
		Auth:      NewAuthController(services, provider, view),
		Dashboard: NewDashboardController(services, view),
		Contacts:  NewContactsController(services, view),
		Logs:      NewLogsController(services, view),
		Users:     NewUsersController(services, view),
		API:       NewAPIController(services),
	}
}
