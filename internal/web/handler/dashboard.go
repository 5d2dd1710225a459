package handler

import (
	"log/slog"
	"net/http"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/session"
	"github.com/finboard/finboard/internal/web/middleware"
	"github.com/finboard/finboard/internal/web/view"
)

// DashboardHandler renders the authenticated landing page
type DashboardHandler struct {
	sessions *session.Manager
	client   *backend.Client
	logger   *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(sessions *session.Manager, client *backend.Client, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

// Home renders the dashboard: accounts, wallet, recent transactions,
// chart series and category statistics. A partial backend failure still
// renders the page with what loaded.
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		// The guard redirects anonymous navigation before this handler
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token := h.sessions.Token()
	ctx := r.Context()
	data := view.DashboardData{
		PageData: view.PageData{Title: "Dashboard", User: user, Flash: middleware.GetFlash(ctx)},
	}

	var loadErr error
	if data.Accounts, loadErr = h.client.ListAccounts(ctx, token, user.ID); loadErr != nil {
		h.logger.Warn("accounts load failed", slog.String("error", loadErr.Error()))
	}
	if wallet, err := h.client.WalletAccount(ctx, token, user.ID); err == nil {
		data.Wallet = wallet
	}
	if recent, err := h.client.RecentTransactions(ctx, token, user.ID); err == nil {
		data.Recent = recent
	} else {
		loadErr = err
	}
	if chart, err := h.client.ChartData(ctx, token, user.ID, 0); err == nil {
		data.Chart = chart
	}
	if stats, err := h.client.Statistics(ctx, token, user.ID); err == nil {
		data.Stats = stats
	}

	if loadErr != nil {
		data.LoadError = "Some dashboard data could not be loaded"
	}

	view.Render(w, r, view.Dashboard(data))
}
