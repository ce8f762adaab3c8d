package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/forum-admin/userctx"
)

// Session keys shared with the auth controller
const (
	SessionLoggedIn = "logged_in"
	SessionAdmin    = "admin_username"
	SessionRedirect = "redirect_after_login"
	SessionState    = "state"
	SessionFlash    = "flash"
)

// RequireAuth ensures the administrator is signed in
// If not, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		if loggedIn, _ := sess.Get(SessionLoggedIn).(bool); !loggedIn {
			// Only pages are worth returning to after login
			if r.Method == http.MethodGet {
				sess.Set(SessionRedirect, r.URL.Path)
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		username, _ := sess.Get(SessionAdmin).(string)
		ctx := userctx.SetAdmin(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
