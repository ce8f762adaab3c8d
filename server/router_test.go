package server

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/forum-admin/config"
	"github.com/blogem/forum-admin/controllers"
	"github.com/blogem/forum-admin/database"
	"github.com/blogem/forum-admin/repositories"
	"github.com/blogem/forum-admin/services"
)

const testPassword = "correct horse"

// RouterTestSuite drives the full HTTP stack against a real database
type RouterTestSuite struct {
	suite.Suite
	db     *sql.DB
	ctrl   *controllers.Controllers
	server *httptest.Server
	client *http.Client
}

// SetupTest builds a fresh database, router and cookie-aware client
func (suite *RouterTestSuite) SetupTest() {
	db, err := database.InitializeDatabase(filepath.Join(suite.T().TempDir(), "forum.db"))
	require.NoError(suite.T(), err)
	suite.db = db

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(suite.T(), err)

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, config.AdminConfig{
		Username:       "admin",
		PasswordHashes: []string{string(hash)},
	}, time.UTC)
	suite.ctrl = controllers.NewControllers(srvs, nil, time.UTC)

	router, err := NewRouter(suite.ctrl, Options{SessionLifetime: time.Hour})
	require.NoError(suite.T(), err)
	suite.server = httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	require.NoError(suite.T(), err)
	suite.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// TearDownTest stops the server and closes the database
func (suite *RouterTestSuite) TearDownTest() {
	suite.server.Close()
	suite.db.Close()
}

func (suite *RouterTestSuite) get(path string) *http.Response {
	resp, err := suite.client.Get(suite.server.URL + path)
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (suite *RouterTestSuite) postForm(path string, values url.Values) *http.Response {
	resp, err := suite.client.PostForm(suite.server.URL+path, values)
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (suite *RouterTestSuite) postJSON(path, body string) *http.Response {
	resp, err := suite.client.Post(suite.server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (suite *RouterTestSuite) body(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	require.NoError(suite.T(), err)
	return string(data)
}

func (suite *RouterTestSuite) login() {
	resp := suite.postForm("/login", url.Values{"username": {"admin"}, "password": {testPassword}})
	require.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
}

// TestProtectedRoutesRedirectAnonymous tests that every panel page requires login
func (suite *RouterTestSuite) TestProtectedRoutesRedirectAnonymous() {
	for _, path := range []string{"/", "/contacts", "/logs", "/users", "/api/stats"} {
		resp := suite.get(path)
		assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(suite.T(), "/login", resp.Header.Get("Location"), path)
	}
}

// TestLogin_WrongPassword tests that bad credentials leave the session anonymous
func (suite *RouterTestSuite) TestLogin_WrongPassword() {
	resp := suite.postForm("/login", url.Values{"username": {"admin"}, "password": {"admin123"}})
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(suite.T(), suite.body(resp), "Invalid credentials")

	resp = suite.get("/")
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
}

// TestLogin_RedirectsToRequestedPage tests returning to the page asked for before login
func (suite *RouterTestSuite) TestLogin_RedirectsToRequestedPage() {
	suite.get("/logs")

	resp := suite.postForm("/login", url.Values{"username": {"admin"}, "password": {testPassword}})
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
	assert.Equal(suite.T(), "/logs", resp.Header.Get("Location"))
}

// TestLoginThenBrowse tests that a signed-in admin can open every page
func (suite *RouterTestSuite) TestLoginThenBrowse() {
	suite.login()

	for _, path := range []string{"/", "/contacts", "/logs", "/users"} {
		resp := suite.get(path)
		assert.Equal(suite.T(), http.StatusOK, resp.StatusCode, path)
	}

	resp := suite.get("/login")
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
}

// TestLogout tests that logging out ends the session
func (suite *RouterTestSuite) TestLogout() {
	suite.login()

	resp := suite.get("/logout")
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
	assert.Equal(suite.T(), "/login", resp.Header.Get("Location"))

	resp = suite.get("/")
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
}

// TestStatsAPI_Shape tests the chart payload encodes series as pairs
func (suite *RouterTestSuite) TestStatsAPI_Shape() {
	_, err := suite.db.Exec(`INSERT INTO users (username, email) VALUES ('ana', 'ana@example.com')`)
	require.NoError(suite.T(), err)
	_, err = suite.db.Exec(`INSERT INTO access_logs (ip_address, page) VALUES ('10.0.0.1', '/')`)
	require.NoError(suite.T(), err)

	suite.login()
	resp := suite.get("/api/stats")
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(suite.T(), "application/json", resp.Header.Get("Content-Type"))

	var payload map[string][][]interface{}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&payload))

	require.Len(suite.T(), payload["user_registrations"], 1)
	assert.Equal(suite.T(), time.Now().UTC().Format("2006-01-02"), payload["user_registrations"][0][0])
	assert.Equal(suite.T(), float64(1), payload["user_registrations"][0][1])

	require.Len(suite.T(), payload["hourly_activity"], 1)
	assert.Len(suite.T(), payload["hourly_activity"][0][0], 2)
	assert.Equal(suite.T(), float64(1), payload["hourly_activity"][0][1])
}

// TestStatsAPI_EmptySeries tests that empty series are arrays, not null
func (suite *RouterTestSuite) TestStatsAPI_EmptySeries() {
	suite.login()
	resp := suite.get("/api/stats")
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.JSONEq(suite.T(), `{"user_registrations":[],"hourly_activity":[]}`, suite.body(resp))
}

// TestStatsAPI_StoreFailure tests the JSON error body
func (suite *RouterTestSuite) TestStatsAPI_StoreFailure() {
	suite.login()
	require.NoError(suite.T(), suite.db.Close())

	resp := suite.get("/api/stats")
	assert.Equal(suite.T(), http.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(suite.T(), payload["error"])
}

// TestDashboard_StoreFailure tests the generic error page
func (suite *RouterTestSuite) TestDashboard_StoreFailure() {
	suite.login()
	require.NoError(suite.T(), suite.db.Close())

	resp := suite.get("/")
	assert.Equal(suite.T(), http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(suite.T(), suite.body(resp), "Failed to load dashboard data")
}

func (suite *RouterTestSuite) sessionCookie() string {
	serverURL, err := url.Parse(suite.server.URL)
	require.NoError(suite.T(), err)
	for _, cookie := range suite.client.Jar.Cookies(serverURL) {
		if cookie.Name == "forum_admin_session" {
			return cookie.Value
		}
	}
	return ""
}

// TestLogin_RegeneratesSessionID tests that the pre-login session id stops working
func (suite *RouterTestSuite) TestLogin_RegeneratesSessionID() {
	suite.get("/login")
	before := suite.sessionCookie()
	require.NotEmpty(suite.T(), before)

	suite.login()
	after := suite.sessionCookie()
	assert.NotEmpty(suite.T(), after)
	assert.NotEqual(suite.T(), before, after)

	assert.Equal(suite.T(), http.StatusOK, suite.get("/").StatusCode)

	req, err := http.NewRequest(http.MethodGet, suite.server.URL+"/", nil)
	require.NoError(suite.T(), err)
	req.AddCookie(&http.Cookie{Name: "forum_admin_session", Value: before})
	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(suite.T(), err)
	defer resp.Body.Close()
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
	assert.Equal(suite.T(), "/login", resp.Header.Get("Location"))
}

// TestContactLifecycle tests submitting, listing and responding to a contact
func (suite *RouterTestSuite) TestContactLifecycle() {
	resp := suite.postJSON("/api/contact", `{"name":"Maria","email":"maria@example.com","subject":"Login","message":"I cannot log in","status":"pending"}`)
	require.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	var created struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(suite.T(), "pending", created.Status)

	suite.login()
	resp = suite.get("/contacts")
	assert.Contains(suite.T(), suite.body(resp), "I cannot log in")

	resp = suite.postForm("/contacts/respond/"+strconv.FormatInt(created.ID, 10), url.Values{"response": {"Password reset sent"}})
	assert.Equal(suite.T(), http.StatusSeeOther, resp.StatusCode)
	assert.Equal(suite.T(), "/contacts", resp.Header.Get("Location"))

	// The confirmation is shown once
	resp = suite.get("/contacts")
	assert.Contains(suite.T(), suite.body(resp), "Response to Maria saved")
	resp = suite.get("/contacts")
	assert.NotContains(suite.T(), suite.body(resp), "Response to Maria saved")

	var status, response string
	require.NoError(suite.T(), suite.db.QueryRow(
		`SELECT status, admin_response FROM contacts WHERE id = ?`, created.ID,
	).Scan(&status, &response))
	assert.Equal(suite.T(), "responded", status)
	assert.Equal(suite.T(), "Password reset sent", response)
}

// TestRespond_UnknownContact tests the not found page
func (suite *RouterTestSuite) TestRespond_UnknownContact() {
	suite.login()

	resp := suite.postForm("/contacts/respond/999", url.Values{"response": {"hello"}})
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
	assert.Contains(suite.T(), suite.body(resp), "Contact request not found")

	var count int
	require.NoError(suite.T(), suite.db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&count))
	assert.Zero(suite.T(), count)
}

// TestRespond_EmptyResponse tests the validation message
func (suite *RouterTestSuite) TestRespond_EmptyResponse() {
	_, err := suite.db.Exec(`INSERT INTO contacts (name, email, subject, message) VALUES ('a', 'a@b.co', 's', 'm')`)
	require.NoError(suite.T(), err)
	suite.login()

	resp := suite.postForm("/contacts/respond/1", url.Values{"response": {"  "}})
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	assert.Contains(suite.T(), suite.body(resp), "Response is required")
}

// TestSubmitContact_Invalid tests the JSON validation error
func (suite *RouterTestSuite) TestSubmitContact_Invalid() {
	resp := suite.postJSON("/api/contact", `{"name":"","email":"nope"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)

	resp = suite.postJSON("/api/contact", `not json`)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

// TestTrack tests the page view beacon
func (suite *RouterTestSuite) TestTrack() {
	resp := suite.postJSON("/api/track", `{"page":"/topics/1","user_id":7}`)
	assert.Equal(suite.T(), http.StatusNoContent, resp.StatusCode)

	resp = suite.postForm("/api/track", url.Values{"page": {"/"}})
	assert.Equal(suite.T(), http.StatusNoContent, resp.StatusCode)

	resp = suite.postJSON("/api/track", `{"user_id":7}`)
	assert.Equal(suite.T(), http.StatusNoContent, resp.StatusCode)

	var count int
	require.NoError(suite.T(), suite.db.QueryRow(`SELECT COUNT(*) FROM access_logs`).Scan(&count))
	assert.Equal(suite.T(), 2, count)

	var userID sql.NullInt64
	require.NoError(suite.T(), suite.db.QueryRow(
		`SELECT user_id FROM access_logs WHERE page = '/topics/1'`,
	).Scan(&userID))
	assert.Equal(suite.T(), int64(7), userID.Int64)
}

// TestTrack_StoreFailureStillNoContent tests that recording failures stay invisible
func (suite *RouterTestSuite) TestTrack_StoreFailureStillNoContent() {
	require.NoError(suite.T(), suite.db.Close())

	resp := suite.postJSON("/api/track", `{"page":"/"}`)
	assert.Equal(suite.T(), http.StatusNoContent, resp.StatusCode)
}

// TestTrack_RequiresSecretWhenConfigured tests that only the forum can report views
func (suite *RouterTestSuite) TestTrack_RequiresSecretWhenConfigured() {
	router, err := NewRouter(suite.ctrl, Options{SessionLifetime: time.Hour, TrackSecret: "forum-shared"})
	require.NoError(suite.T(), err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	track := func(secret string) int {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/track", strings.NewReader(`{"page":"/topics/1","user_id":7}`))
		require.NoError(suite.T(), err)
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set("X-Track-Secret", secret)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(suite.T(), err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(suite.T(), http.StatusUnauthorized, track(""))
	assert.Equal(suite.T(), http.StatusUnauthorized, track("guess"))
	assert.Equal(suite.T(), http.StatusNoContent, track("forum-shared"))

	var count int
	require.NoError(suite.T(), suite.db.QueryRow(`SELECT COUNT(*) FROM access_logs`).Scan(&count))
	assert.Equal(suite.T(), 1, count)
}

// TestSSODisabled tests that the sign-on routes are absent without a provider
func (suite *RouterTestSuite) TestSSODisabled() {
	assert.Equal(suite.T(), http.StatusNotFound, suite.get("/login/sso").StatusCode)
	assert.Equal(suite.T(), http.StatusNotFound, suite.get("/callback").StatusCode)
}

// TestHealth tests the health endpoint
func (suite *RouterTestSuite) TestHealth() {
	resp := suite.get("/health")
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(suite.T(), suite.body(resp), "healthy")
}

// TestRouterTestSuite runs the test suite
func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
