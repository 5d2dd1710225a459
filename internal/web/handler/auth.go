package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/ratelimit"
	"github.com/finboard/finboard/internal/session"
	"github.com/finboard/finboard/internal/web/middleware"
	"github.com/finboard/finboard/internal/web/view"
)

// AuthHandler handles the login and registration pages and actions
type AuthHandler struct {
	sessions *session.Manager
	limiter  ratelimit.Limiter
	secure   bool
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. secure marks the auth cookie
// Secure (production deployments behind TLS).
func NewAuthHandler(sessions *session.Manager, limiter ratelimit.Limiter, secure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		limiter:  limiter,
		secure:   secure,
		logger:   logger,
	}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, view.Login(view.LoginData{
		PageData: view.PageData{Title: "Login", Flash: middleware.GetFlash(r.Context())},
		Next:     r.URL.Query().Get("next"),
	}))
}

// Login handles the login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if email == "" || password == "" {
		h.renderLoginError(w, r, "Email and password are required", email, next)
		return
	}

	allowed, err := h.limiter.Allow(r.Context(), email)
	if err != nil {
		h.logger.Error("rate limiter unavailable", slog.String("error", err.Error()))
		// Fail open: the backend still verifies credentials
		allowed = true
	}
	if !allowed {
		h.renderLoginError(w, r, "Too many login attempts, please wait a minute", email, next)
		return
	}

	result := h.sessions.Login(r.Context(), email, password)
	if !result.OK {
		h.renderLoginError(w, r, result.Message, email, next)
		return
	}

	_ = h.limiter.Reset(r.Context(), email)
	middleware.SetAuthCookie(w, result.Token, h.secure)
	middleware.SetFlash(w, "success", "Welcome back, "+result.User.DisplayName()+"!")
	redirectNext(w, r, next)
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, view.Register(view.RegisterData{
		PageData:    view.PageData{Title: "Register", Flash: middleware.GetFlash(r.Context())},
		FieldErrors: make(map[string]string),
	}))
}

// Register handles the registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", backend.RegisterRequest{}, nil)
		return
	}

	req := backend.RegisterRequest{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}
	passwordConfirm := r.FormValue("password_confirm")

	fieldErrors := make(map[string]string)
	if req.FirstName == "" {
		fieldErrors["first_name"] = "First name is required"
	}
	if req.LastName == "" {
		fieldErrors["last_name"] = "Last name is required"
	}
	if req.Email == "" {
		fieldErrors["email"] = "Email is required"
	}
	if req.Password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(req.Password) < 8 {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}
	if req.Password != passwordConfirm {
		fieldErrors["password_confirm"] = "Passwords do not match"
	}
	if len(fieldErrors) > 0 {
		h.renderRegisterError(w, r, "", req, fieldErrors)
		return
	}

	allowed, err := h.limiter.Allow(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("rate limiter unavailable", slog.String("error", err.Error()))
		allowed = true
	}
	if !allowed {
		h.renderRegisterError(w, r, "Too many attempts, please wait a minute", req, nil)
		return
	}

	result := h.sessions.Register(r.Context(), req)
	if !result.OK {
		h.renderRegisterError(w, r, result.Message, req, nil)
		return
	}

	_ = h.limiter.Reset(r.Context(), req.Email)
	middleware.SetAuthCookie(w, result.Token, h.secure)
	middleware.SetFlash(w, "success", "Account created! Welcome, "+result.User.DisplayName()+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and cookie and navigates to the login page.
// Safe to call with no active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	middleware.ClearAuthCookie(w, h.secure)
	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, msg, email, next string) {
	view.Render(w, r, view.Login(view.LoginData{
		PageData: view.PageData{Title: "Login"},
		Email:    email,
		Error:    msg,
		Next:     next,
	}))
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, msg string, req backend.RegisterRequest, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}
	view.Render(w, r, view.Register(view.RegisterData{
		PageData:    view.PageData{Title: "Register"},
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Error:       msg,
		FieldErrors: fieldErrors,
	}))
}

// redirectNext redirects to the original destination when it is a local
// path, otherwise to the home page
func redirectNext(w http.ResponseWriter, r *http.Request, next string) {
	if next != "" && strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
