package web_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/dependencies/mocks"
	"github.com/finboard/finboard/internal/model"
	"github.com/finboard/finboard/internal/ratelimit"
	"github.com/finboard/finboard/internal/session"
	"github.com/finboard/finboard/internal/testutil"
	"github.com/finboard/finboard/internal/web"
	webmiddleware "github.com/finboard/finboard/internal/web/middleware"
)

// financeAPI is a stub of the remote finance backend with one seeded user
// (alice@example.com / secret123) and a small fixture data set.
type financeAPI struct {
	server *httptest.Server

	mu     sync.Mutex
	tokens map[string]model.User
	nextID int
}

const (
	fixtureEmail    = "alice@example.com"
	fixturePassword = "secret123"
)

func newFinanceAPI() *financeAPI {
	api := &financeAPI{
		tokens: make(map[string]model.User),
		nextID: 1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", api.handleLogin)
	mux.HandleFunc("POST /auth/register", api.handleRegister)
	mux.HandleFunc("GET /auth/me", api.authed(api.handleMe))
	mux.HandleFunc("GET /accounts/user/{id}", api.authed(api.handleAccounts))
	mux.HandleFunc("GET /accounts/wallet/user/{id}", api.authed(api.handleWallet))
	mux.HandleFunc("POST /accounts/user/{id}", api.authed(api.handleCreateAccount))
	mux.HandleFunc("PUT /accounts/{id}", api.authed(api.handleUpdateAccount))
	mux.HandleFunc("DELETE /accounts/{id}", api.authed(api.handleNoContent))
	mux.HandleFunc("GET /transactions/recent/user/{id}", api.authed(api.handleRecent))
	mux.HandleFunc("GET /transactions/user/{id}", api.authed(api.handleTransactions))
	mux.HandleFunc("GET /transactions/chart/user/{id}", api.authed(api.handleChart))
	mux.HandleFunc("GET /transactions/statistics/user/{id}", api.authed(api.handleStatistics))
	mux.HandleFunc("POST /transactions", api.authed(api.handleCreateTransaction))
	mux.HandleFunc("PUT /transactions/{id}/status", api.authed(api.handleTxnStatus))
	mux.HandleFunc("DELETE /transactions/{id}", api.authed(api.handleNoContent))
	mux.HandleFunc("PUT /users/{id}", api.authed(api.handleUpdateProfile))
	mux.HandleFunc("PUT /users/{id}/password", api.authed(api.handleChangePassword))
	mux.HandleFunc("POST /users/{id}/avatar", api.authed(api.handleOK))

	api.server = httptest.NewServer(mux)
	return api
}

func (api *financeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		api.mu.Lock()
		_, ok := api.tokens[token]
		api.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next(w, r)
	}
}

func (api *financeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req backend.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email != fixtureEmail || req.Password != fixturePassword {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user := model.User{ID: 1, FirstName: "Alice", LastName: "Smith", Email: fixtureEmail}
	api.issueSession(w, "token-alice", user, "Login successful")
}

func (api *financeAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req backend.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == fixtureEmail {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}

	api.mu.Lock()
	api.nextID++
	id := api.nextID
	api.mu.Unlock()

	user := model.User{ID: model.UserID(id), FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	api.issueSession(w, "token-"+req.Email, user, "Registration successful")
}

func (api *financeAPI) issueSession(w http.ResponseWriter, token string, user model.User, message string) {
	api.mu.Lock()
	api.tokens[token] = user
	api.mu.Unlock()

	writeJSON(w, backend.AuthResponse{Message: message, Token: token, User: user})
}

// revokeAll invalidates every issued token, simulating backend-side expiry
func (api *financeAPI) revokeAll() {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.tokens = make(map[string]model.User)
}

func (api *financeAPI) handleMe(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	api.mu.Lock()
	user := api.tokens[token]
	api.mu.Unlock()
	writeJSON(w, user)
}

func (api *financeAPI) handleAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.AccountList{
		Accounts: []model.Account{
			{ID: "acc-1", AccountName: "Checking", AccountType: "checking", CurrentBalance: 1250.50},
			{ID: "acc-2", AccountName: "Savings", AccountType: "savings", CurrentBalance: 8000},
		},
		TotalBalance: 9250.50,
	})
}

func (api *financeAPI) handleWallet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.WalletInfo{
		ID: "wallet-1", OwnerName: "Alice Smith", Balance: 420.10,
		SpendingLimit: 1000, UsedAmount: 579.90, CardType: "visa",
	})
}

func (api *financeAPI) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req backend.CreateAccountRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, model.Account{ID: "acc-new", AccountName: req.AccountName, AccountType: req.AccountType, CurrentBalance: req.InitialBalance})
}

func (api *financeAPI) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req backend.UpdateAccountRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, model.Account{ID: model.AccountID(r.PathValue("id")), AccountName: req.AccountName, CurrentBalance: req.CurrentBalance})
}

func (api *financeAPI) handleRecent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []model.Transaction{
		{ID: "tx-1", BusinessName: "Coffee Corner", Date: "2026-08-29", Amount: -4.50, Status: model.TransactionSuccess, Type: "expense"},
		{ID: "tx-2", BusinessName: "Acme Payroll", Date: "2026-08-28", Amount: 2500, Status: model.TransactionPending, Type: "income"},
	})
}

func (api *financeAPI) handleTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.TransactionPage{
		Transactions: []model.Transaction{
			{ID: "tx-1", BusinessName: "Coffee Corner", Amount: -4.50, Status: model.TransactionSuccess, Type: "expense"},
		},
		Page:          0,
		Size:          20,
		TotalElements: 1,
		TotalPages:    1,
	})
}

func (api *financeAPI) handleChart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ChartData{
		Income:  []float64{100, 200},
		Expense: []float64{50, 75},
		Months:  []string{"Jan", "Feb"},
	})
}

func (api *financeAPI) handleStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.Statistics{
		Categories: []model.StatisticItem{{Label: "Groceries", Amount: 320, Percentage: 64}},
		Total:      500,
	})
}

func (api *financeAPI) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req backend.CreateTransactionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, model.Transaction{ID: "tx-new", BusinessName: req.BusinessName, Amount: req.Amount, Status: model.TransactionPending, Type: req.Type})
}

func (api *financeAPI) handleTxnStatus(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, model.Transaction{ID: model.TransactionID(r.PathValue("id")), Status: req["status"]})
}

func (api *financeAPI) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req backend.UpdateProfileRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, model.User{ID: 1, FirstName: req.FirstName, LastName: req.LastName, Email: fixtureEmail})
}

func (api *financeAPI) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req backend.ChangePasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.CurrentPassword != fixturePassword {
		writeError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	writeJSON(w, map[string]string{"message": "Password changed"})
}

func (api *financeAPI) handleOK(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "ok"})
}

func (api *financeAPI) handleNoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// webTestServer wires the full frontend against the stub backend
type webTestServer struct {
	t        *testing.T
	handler  http.Handler
	api      *financeAPI
	sessions *session.Manager
	cookies  *cookieJar
}

func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	api := newFinanceAPI()
	t.Cleanup(api.server.Close)

	logger := testutil.NopLogger()
	client := backend.New(api.server.URL)
	sessions := session.New(client, session.NewMemoryTokenStore(), logger)
	clk := mocks.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{MaxAttempts: 3, Window: time.Minute}, clk)

	router := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Sessions: sessions,
		Client:   client,
		Limiter:  limiter,
	})

	return &webTestServer{
		t:        t,
		handler:  router,
		api:      api,
		sessions: sessions,
		cookies:  newCookieJar(),
	}
}

// restart replaces the router and session manager with fresh instances
// against the same stub backend, keeping the browser's cookie jar. This
// simulates a frontend restart mid-browsing-session.
func (ts *webTestServer) restart() {
	ts.t.Helper()

	logger := testutil.NopLogger()
	client := backend.New(ts.api.server.URL)
	ts.sessions = session.New(client, session.NewMemoryTokenStore(), logger)
	clk := mocks.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	ts.handler = web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Sessions: ts.sessions,
		Client:   client,
		Limiter:  ratelimit.NewMemoryLimiter(ratelimit.DefaultConfig(), clk),
	})
}

// request makes an HTTP request with the jar's cookies attached
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	ts.cookies.extract(rr)
	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// login authenticates as the fixture user and follows nothing
func (ts *webTestServer) login() {
	ts.t.Helper()
	form := url.Values{"email": {fixtureEmail}, "password": {fixturePassword}}
	rr := ts.post("/login", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after login")
	require.True(ts.t, ts.cookies.hasAuthToken(), "Expected auth cookie to be set")
}

// followRedirect follows the Location header of a redirect response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{cookies: make(map[string]*http.Cookie)}
}

func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

func (j *cookieJar) hasAuthToken() bool {
	_, ok := j.cookies[webmiddleware.AuthCookieName]
	return ok
}

// Assertion helpers

func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
