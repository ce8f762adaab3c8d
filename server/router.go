// Package server wires controllers and middleware into the HTTP router.
package server

import (
	"fmt"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/forum-admin/controllers"
	authmiddleware "github.com/blogem/forum-admin/middleware"
)

// Options controls router behaviour that comes from configuration
type Options struct {
	// UseHTTPS marks the session cookie as secure
	UseHTTPS bool
	// SessionLifetime is how long an idle session stays valid
	SessionLifetime time.Duration
	// PanelRecorder, when set, records GET views of the panel's own pages
	PanelRecorder authmiddleware.Recorder
	// TrackSecret, when set, is required on page views reported by the forum
	TrackSecret string
}

// NewRouter configures all routes
func NewRouter(ctrl *controllers.Controllers, opts Options) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	lifetime := int64(opts.SessionLifetime / time.Second)
	if lifetime <= 0 {
		lifetime = 3600
	}

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "forum_admin_session",
		Secure:         opts.UseHTTPS,
		Gclifetime:     lifetime,
		Maxlifetime:    lifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.ShowLogin)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/login/sso", ctrl.Auth.SSOLogin)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status": "healthy", "service": "forum-admin"}`)
	})

	// Endpoints called by the public forum
	r.Post("/api/contact", ctrl.API.SubmitContact)
	r.Group(func(r chi.Router) {
		if opts.TrackSecret != "" {
			r.Use(authmiddleware.RequireSharedSecret(authmiddleware.TrackSecretHeader, opts.TrackSecret))
		}
		r.Post("/api/track", ctrl.API.Track)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Group(func(r chi.Router) {
			if opts.PanelRecorder != nil {
				r.Use(authmiddleware.AccessLogger(opts.PanelRecorder))
			}

			r.Get("/", ctrl.Dashboard.Index)
			r.Get("/contacts", ctrl.Contacts.Index)
			r.Get("/logs", ctrl.Logs.Index)
			r.Get("/users", ctrl.Users.Index)
		})

		r.Post("/contacts/respond/{id}", ctrl.Contacts.Respond)
		r.Get("/api/stats", ctrl.API.Stats)
	})

	return r, nil
}
