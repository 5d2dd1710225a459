package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginPageRenders(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/login")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form[action='/login']")
	assertContainsElement(t, doc, "input[name='email']")
	assertContainsElement(t, doc, "input[name='password']")
	// Anonymous nav shows auth links only
	assertContainsElement(t, doc, "nav a[href='/register']")
	assertNotContainsElement(t, doc, ".nav-logout")
}

func TestLoginSucceeds(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"email": {fixtureEmail}, "password": {fixturePassword}}
	rr := ts.post("/login", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasAuthToken())

	// Follow redirect: dashboard shows the user and a welcome flash
	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".nav-user", "Alice Smith")
	assertContainsText(t, doc, ".flash-success", "Welcome back")
}

func TestLoginWrongPasswordShowsBackendMessage(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"email": {fixtureEmail}, "password": {"nope"}}
	rr := ts.post("/login", form)

	// Re-rendered form, not a redirect
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasAuthToken())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Invalid credentials")
	// Email is kept so the user only retypes the password
	email, _ := doc.Find("input[name='email']").Attr("value")
	assert.Equal(t, fixtureEmail, email)
}

func TestLoginMissingFields(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/login", url.Values{"email": {fixtureEmail}})

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Email and password are required")
}

func TestLoginRateLimited(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"email": {fixtureEmail}, "password": {"nope"}}
	for i := 0; i < 3; i++ {
		ts.post("/login", form)
	}

	rr := ts.post("/login", form)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Too many login attempts")
}

func TestLoginRateLimitDoesNotBlockOtherEmails(t *testing.T) {
	ts := newWebTestServer(t)

	bad := url.Values{"email": {"mallory@example.com"}, "password": {"nope"}}
	for i := 0; i < 4; i++ {
		ts.post("/login", bad)
	}

	form := url.Values{"email": {fixtureEmail}, "password": {fixturePassword}}
	rr := ts.post("/login", form)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestLoginRedirectsToNext(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"email":    {fixtureEmail},
		"password": {fixturePassword},
		"next":     {"/transactions"},
	}
	rr := ts.post("/login", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/transactions", rr.Header().Get("Location"))
}

func TestLoginNextMustBeLocalPath(t *testing.T) {
	ts := newWebTestServer(t)

	for _, next := range []string{"https://evil.example.com", "//evil.example.com"} {
		form := url.Values{
			"email":    {fixtureEmail},
			"password": {fixturePassword},
			"next":     {next},
		}
		rr := ts.post("/login", form)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"), "next=%q must not leave the site", next)
	}
}

func TestRegisterSucceeds(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"first_name":       {"Bob"},
		"last_name":        {"Jones"},
		"email":            {"bob@example.com"},
		"password":         {"longenough"},
		"password_confirm": {"longenough"},
	}
	rr := ts.post("/register", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasAuthToken())

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".nav-user", "Bob Jones")
	assertContainsText(t, doc, ".flash-success", "Account created")
}

func TestRegisterFieldValidation(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"first_name":       {"Bob"},
		"email":            {"bob@example.com"},
		"password":         {"short"},
		"password_confirm": {"different"},
	}
	rr := ts.post("/register", form)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasAuthToken())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".field-error", "Last name is required")
	assertContainsText(t, doc, ".field-error", "Password must be at least 8 characters")
	assertContainsText(t, doc, ".field-error", "Passwords do not match")
	// Entered values survive the round trip
	first, _ := doc.Find("input[name='first_name']").Attr("value")
	assert.Equal(t, "Bob", first)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"first_name":       {"Alice"},
		"last_name":        {"Smith"},
		"email":            {fixtureEmail},
		"password":         {"longenough"},
		"password_confirm": {"longenough"},
	}
	rr := ts.post("/register", form)

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Email already registered")
}

func TestLogoutClearsSessionAndCookie(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	rr := ts.post("/logout", nil)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasAuthToken())
	assert.False(t, ts.sessions.IsAuthenticated())

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-info", "You have been logged out")
}

func TestFlashShowsOnlyOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".flash-success")

	rr = ts.get("/")
	doc = parseHTML(rr.Body)
	assertNotContainsElement(t, doc, ".flash-success")
}
