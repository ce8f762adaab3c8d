package controllers

import (
	"log/slog"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/google/uuid"

	"github.com/blogem/forum-admin/authenticator"
	"github.com/blogem/forum-admin/middleware"
	"github.com/blogem/forum-admin/services"
)

// AuthController handles administrator sign-in
type AuthController struct {
	services *services.Services
	provider authenticator.Provider
	view     *renderer
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, provider authenticator.Provider, view *renderer) *AuthController {
	return &AuthController{
		services: services,
		provider: provider,
		view:     view,
	}
}

type loginData struct {
	Title       string
	CurrentPage string
	Error       string
	Success     string
	Username    string
	SSOEnabled  bool
}

func (c *AuthController) renderLogin(w http.ResponseWriter, statusCode int, username, errMsg string) {
	c.view.renderWithStatus(w, statusCode, "login.html", loginData{
		Title:       "Login",
		CurrentPage: "login",
		Error:       errMsg,
		Username:    username,
		SSOEnabled:  c.provider != nil,
	})
}

// ShowLogin handles GET /login
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if loggedIn, _ := session.GetSession(r).Get(middleware.SessionLoggedIn).(bool); loggedIn {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	c.renderLogin(w, http.StatusOK, "", "")
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if !c.services.Auth.Authenticate(username, password) {
		slog.Warn("invalid login attempt", "username", username, "ip", middleware.ClientIP(r))
		c.renderLogin(w, http.StatusUnauthorized, username, "Invalid credentials")
		return
	}

	slog.Info("admin logged in", "username", username, "ip", middleware.ClientIP(r))
	c.signIn(w, r, c.services.Auth.Username())
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if err := sess.Flush(); err != nil {
		slog.Error("failed to clear session", "error", err)
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// SSOLogin handles GET /login/sso and initiates the OpenID Connect flow
func (c *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		http.NotFound(w, r)
		return
	}

	// Save the state in the session to validate in callback
	state := uuid.NewString()
	sess := session.GetSession(r)
	sess.Set(middleware.SessionState, state)

	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback from the identity provider
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		http.NotFound(w, r)
		return
	}

	sess := session.GetSession(r)

	storedState, _ := sess.Get(middleware.SessionState).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}
	sess.Delete(middleware.SessionState)

	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	email := claims.Email()
	if !c.services.Auth.AllowsEmail(email) {
		slog.Warn("sso login rejected", "email", email, "ip", middleware.ClientIP(r))
		c.renderLogin(w, http.StatusForbidden, "", "This account is not allowed to administer the forum")
		return
	}

	slog.Info("admin logged in via sso", "email", email, "ip", middleware.ClientIP(r))
	c.signIn(w, r, c.services.Auth.Username())
}

// signIn marks the session as authenticated and sends the administrator to
// the page they originally asked for
func (c *AuthController) signIn(w http.ResponseWriter, r *http.Request, username string) {
	// A new session id keeps an id planted before login from gaining access
	sess, err := session.RegenerateSession(w, r)
	if err != nil {
		slog.Error("failed to regenerate session", "error", err)
		c.view.renderError(w, http.StatusInternalServerError, "login", "Failed to start session", "/login")
		return
	}

	sess.Set(middleware.SessionLoggedIn, true)
	sess.Set(middleware.SessionAdmin, username)

	target := "/"
	if redirect, ok := sess.Get(middleware.SessionRedirect).(string); ok && redirect != "" {
		target = redirect
		sess.Delete(middleware.SessionRedirect)
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
