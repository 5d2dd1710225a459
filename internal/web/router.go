package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/backend"
	appmiddleware "github.com/finboard/finboard/internal/middleware"
	"github.com/finboard/finboard/internal/ratelimit"
	"github.com/finboard/finboard/internal/session"
	"github.com/finboard/finboard/internal/web/handler"
	"github.com/finboard/finboard/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger   *slog.Logger
	Sessions *session.Manager
	Client   *backend.Client
	Limiter  ratelimit.Limiter
	// SecureCookies marks auth cookies Secure (production behind TLS)
	SecureCookies bool
	// GuardPaths overrides the default path set when non-zero
	GuardPaths middleware.GuardPaths
}

// NewRouter creates the web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	paths := cfg.GuardPaths
	if paths == (middleware.GuardPaths{}) {
		paths = middleware.DefaultGuardPaths()
	}

	r.Use(appmiddleware.Recovery(cfg.Logger, webPanicHandler))
	r.Use(appmiddleware.Logging(cfg.Logger))

	authHandler := handler.NewAuthHandler(cfg.Sessions, cfg.Limiter, cfg.SecureCookies, cfg.Logger)
	dashboardHandler := handler.NewDashboardHandler(cfg.Sessions, cfg.Client, cfg.Logger)
	accountsHandler := handler.NewAccountsHandler(cfg.Sessions, cfg.Client, cfg.Logger)
	transactionsHandler := handler.NewTransactionsHandler(cfg.Sessions, cfg.Client, cfg.Logger)
	settingsHandler := handler.NewSettingsHandler(cfg.Sessions, cfg.Client, cfg.Logger)

	// Every navigation runs the same chain: restore+revalidate the
	// session, read the flash, then the route guard decides.
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Session(cfg.Sessions, cfg.SecureCookies))
	pages.Use(middleware.Flash())
	pages.Use(middleware.Guard(cfg.Sessions, paths))

	pages.HandleFunc("/", dashboardHandler.Home).Methods(http.MethodGet)

	pages.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	pages.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	pages.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	pages.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	pages.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	pages.HandleFunc("/accounts", accountsHandler.List).Methods(http.MethodGet)
	pages.HandleFunc("/accounts", accountsHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/accounts/{id}", accountsHandler.Update).Methods(http.MethodPost)
	pages.HandleFunc("/accounts/{id}/delete", accountsHandler.Delete).Methods(http.MethodPost)

	pages.HandleFunc("/transactions", transactionsHandler.List).Methods(http.MethodGet)
	pages.HandleFunc("/transactions", transactionsHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/transactions/{id}/status", transactionsHandler.UpdateStatus).Methods(http.MethodPost)
	pages.HandleFunc("/transactions/{id}/delete", transactionsHandler.Delete).Methods(http.MethodPost)

	pages.HandleFunc("/settings", settingsHandler.Page).Methods(http.MethodGet)
	pages.HandleFunc("/settings/profile", settingsHandler.UpdateProfile).Methods(http.MethodPost)
	pages.HandleFunc("/settings/password", settingsHandler.ChangePassword).Methods(http.MethodPost)
	pages.HandleFunc("/settings/avatar", settingsHandler.UploadAvatar).Methods(http.MethodPost)

	return r
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Internal Server Error</h1>
<p>Something went wrong. Please try again later.</p>
<p><a href="/">Return to dashboard</a></p>
</body>
</html>`))
}
