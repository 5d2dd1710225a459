package session

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/model"
)

// Manager owns the single authoritative session: the backend token and the
// cached user profile. All authentication-state transitions funnel through
// it; consumers (route guard, handlers, CLI) only read.
//
// The session has two states: anonymous (no token, no user) and
// authenticated (both held). A token without a user is an explicit
// transient state entered after restart while revalidation is pending;
// IsAuthenticated reports false until CurrentUser confirms the token.
type Manager struct {
	client *backend.Client
	store  TokenStore
	logger *slog.Logger

	mu    sync.Mutex
	token string
	user  *model.User
	// gen advances on every mutation; in-flight revalidation responses
	// from an older generation are discarded
	gen uint64

	group singleflight.Group
}

// AuthResult is the outcome of a login or registration attempt. Backend
// and transport failures never escape as errors; they surface here as
// OK=false with a human-readable message.
type AuthResult struct {
	OK      bool
	Message string
	Token   string
	User    *model.User
}

// New creates a session manager. Any token already held by the store is
// restored immediately; the user stays unset until CurrentUser confirms it.
func New(client *backend.Client, store TokenStore, logger *slog.Logger) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		logger: logger,
	}

	token, err := store.Token()
	if err != nil {
		logger.Warn("could not read persisted token", slog.String("error", err.Error()))
		return m
	}
	m.token = token
	return m
}

// Login exchanges credentials for a session. On success the token and user
// are set together; on failure any existing session is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) AuthResult {
	resp, err := m.client.Login(ctx, backend.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.logger.Warn("login failed", slog.String("error", err.Error()))
		return AuthResult{Message: backend.ErrorMessage(err, "Login failed")}
	}

	user := resp.User
	m.establish(resp.Token, &user)
	return AuthResult{OK: true, Message: resp.Message, Token: resp.Token, User: &user}
}

// Register creates an account and establishes the session from the same
// response, mirroring login semantics.
func (m *Manager) Register(ctx context.Context, req backend.RegisterRequest) AuthResult {
	resp, err := m.client.Register(ctx, req)
	if err != nil {
		m.logger.Warn("registration failed", slog.String("error", err.Error()))
		return AuthResult{Message: backend.ErrorMessage(err, "Registration failed")}
	}

	user := resp.User
	m.establish(resp.Token, &user)
	return AuthResult{OK: true, Message: resp.Message, Token: resp.Token, User: &user}
}

// Logout unconditionally clears the session and the token store.
// Idempotent: with no active session it is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
}

// CurrentUser revalidates the session against the backend. With no token
// it returns nil immediately without any backend call. Any backend failure
// is treated as session expiry and clears the whole session (fail-closed).
// Concurrent calls are coalesced into one in-flight request; a response
// arriving after the session has changed underneath it is discarded.
func (m *Manager) CurrentUser(ctx context.Context) *model.User {
	m.mu.Lock()
	token := m.token
	start := m.gen
	m.mu.Unlock()

	if token == "" {
		return nil
	}

	v, err, _ := m.group.Do("me", func() (any, error) {
		return m.client.Me(ctx, token)
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gen != start {
		// Session changed while the request was in flight (logout or a
		// fresh login); neither apply nor clear.
		return nil
	}

	if err != nil {
		m.logger.Warn("session revalidation failed, clearing session",
			slog.String("error", err.Error()),
			slog.Bool("auth_failure", backend.IsAuthFailure(err)),
		)
		m.clearLocked()
		return nil
	}

	user := v.(*model.User)
	m.user = user
	return user
}

// IsAuthenticated reports whether both a token and a confirmed user are
// held. A restored token with revalidation pending reports false.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != "" && m.user != nil
}

// Token returns the held token, or "" in the anonymous state
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// User returns the cached user, or nil when none is confirmed
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// RestoreToken seeds a token from outside the manager (the auth cookie on
// a fresh request). The user stays unset until revalidated. Restoring the
// token already held is a no-op.
func (m *Manager) RestoreToken(token string) {
	if token == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token == m.token {
		return
	}

	m.token = token
	m.user = nil
	m.gen++
	if err := m.store.Save(token); err != nil {
		m.logger.Warn("could not persist token", slog.String("error", err.Error()))
	}
}

// ReplaceUser swaps the cached user after a profile update. Ignored in the
// anonymous state so a user is never held without a token.
func (m *Manager) ReplaceUser(user *model.User) {
	if user == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return
	}
	m.user = user
}

// establish atomically installs a new session
func (m *Manager) establish(token string, user *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.user = user
	m.gen++

	if err := m.store.Save(token); err != nil {
		m.logger.Warn("could not persist token", slog.String("error", err.Error()))
	}
}

// clearLocked wipes token and user together; callers hold m.mu
func (m *Manager) clearLocked() {
	m.token = ""
	m.user = nil
	m.gen++

	if err := m.store.Clear(); err != nil {
		m.logger.Warn("could not clear persisted token", slog.String("error", err.Error()))
	}
}
