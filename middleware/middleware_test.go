package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/forum-admin/userctx"
)

type recordedView struct {
	ip, userAgent, page string
}

type fakeRecorder struct {
	views []recordedView
}

func (f *fakeRecorder) Record(_ context.Context, ip, userAgent, page string, _ *int64) bool {
	f.views = append(f.views, recordedView{ip: ip, userAgent: userAgent, page: page})
	return false
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded list", headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, remote: "10.0.0.2:5000", want: "203.0.113.9"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, remote: "10.0.0.2:5000", want: "198.51.100.4"},
		{name: "remote addr", remote: "192.0.2.1:41234", want: "192.0.2.1"},
		{name: "ipv6 remote addr", remote: "[2001:db8::1]:41234", want: "2001:db8::1"},
		{name: "remote addr without port", remote: "192.0.2.1", want: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}

func TestAccessLogger_RecordsGetOnly(t *testing.T) {
	recorder := &fakeRecorder{}
	handler := AccessLogger(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	get := httptest.NewRequest(http.MethodGet, "/logs", nil)
	get.RemoteAddr = "192.0.2.1:1234"
	get.Header.Set("User-Agent", "Mozilla/5.0")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, get)

	// A failed recording does not change the response
	assert.Equal(t, http.StatusTeapot, rec.Code)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/contacts/respond/1", nil))

	require.Len(t, recorder.views, 1)
	assert.Equal(t, recordedView{ip: "192.0.2.1", userAgent: "Mozilla/5.0", page: "/logs"}, recorder.views[0])
}

func newSessionRouter(t *testing.T) *chi.Mux {
	t.Helper()
	sessioner, err := session.Sessioner(session.Options{Provider: "memory", CookieName: "test_session"})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessioner)
	r.Get("/login-as", func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		sess.Set(SessionLoggedIn, true)
		sess.Set(SessionAdmin, "admin")
	})
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth)
		r.Get("/secret", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(userctx.GetAdmin(r.Context())))
		})
	})
	return r
}

func TestRequireSharedSecret(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "matching secret", header: "s3cret", want: http.StatusNoContent},
		{name: "wrong secret", header: "guess", want: http.StatusUnauthorized},
		{name: "missing secret", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireSharedSecret(TrackSecretHeader, "s3cret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/track", nil)
			if tt.header != "" {
				req.Header.Set(TrackSecretHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want == http.StatusNoContent, called)
		})
	}
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	r := newSessionRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuth_AllowsSignedInAdmin(t *testing.T) {
	r := newSessionRouter(t)

	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodGet, "/login-as", nil))
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}
