package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousNavigationRedirectsToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/", "/accounts", "/transactions", "/settings"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, "path %s", path)
		assert.Equal(t, "/login", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestAnonymousCanReachAuthPages(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/login", "/register"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusOK, rr.Code, "path %s", path)
	}
}

func TestAuthenticatedUserRedirectedAwayFromAuthPages(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	for _, path := range []string{"/login", "/register"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, "path %s", path)
		assert.Equal(t, "/", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestCookielessRequestDoesNotInheritSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	// A different client with no cookies must be treated as anonymous,
	// not handed the logged-in user's session
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, ".nav-user")

	// The cookie-holding client is unaffected: their token revalidates
	rr2 := ts.get("/")
	assert.Equal(t, http.StatusOK, rr2.Code)
	doc = parseHTML(rr2.Body)
	assertContainsText(t, doc, ".nav-user", "Alice Smith")
}

func TestClearingCookiesLogsOut(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()
	require.True(t, ts.sessions.IsAuthenticated())

	// The user wipes their browser cookies
	ts.cookies = newCookieJar()

	rr := ts.get("/settings")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.sessions.IsAuthenticated())
}

func TestSessionSurvivesRestartViaCookie(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	// Fresh frontend process; only the browser cookie remains
	ts.restart()
	require.False(t, ts.sessions.IsAuthenticated())

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, ts.sessions.IsAuthenticated())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".nav-user", "Alice Smith")
}

func TestRevokedTokenClearsSessionAndCookie(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	// Backend invalidates the token (expiry); next navigation must fall
	// back to anonymous and drop the stale cookie
	ts.api.revokeAll()
	ts.restart()

	rr := ts.get("/")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasAuthToken())
	assert.False(t, ts.sessions.IsAuthenticated())
}

func TestCachedUserIsNotRefetchedEveryNavigation(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	// Token revoked backend-side, but the cached user keeps navigation
	// working until something forces a revalidation
	ts.api.revokeAll()

	rr := ts.get("/settings")
	assert.Equal(t, http.StatusOK, rr.Code)
}
