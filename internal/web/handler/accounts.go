package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/model"
	"github.com/finboard/finboard/internal/session"
	"github.com/finboard/finboard/internal/web/middleware"
	"github.com/finboard/finboard/internal/web/view"
)

// AccountsHandler handles the account management page and actions
type AccountsHandler struct {
	sessions *session.Manager
	client   *backend.Client
	logger   *slog.Logger
}

// NewAccountsHandler creates a new AccountsHandler
func NewAccountsHandler(sessions *session.Manager, client *backend.Client, logger *slog.Logger) *AccountsHandler {
	return &AccountsHandler{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

// List renders the account management page
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := view.AccountsData{
		PageData: view.PageData{Title: "Accounts", User: user, Flash: middleware.GetFlash(r.Context())},
	}

	accounts, err := h.client.ListAccounts(r.Context(), h.sessions.Token(), user.ID)
	if err != nil {
		h.logger.Warn("accounts load failed", slog.String("error", err.Error()))
		data.LoadError = backend.ErrorMessage(err, "Accounts could not be loaded")
	} else {
		data.Accounts = accounts
	}

	view.Render(w, r, view.Accounts(data))
}

// Create handles the new-account form
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}

	req := backend.CreateAccountRequest{
		AccountName:    strings.TrimSpace(r.FormValue("account_name")),
		AccountType:    strings.TrimSpace(r.FormValue("account_type")),
		InitialBalance: parseAmount(r.FormValue("initial_balance")),
	}
	if req.AccountName == "" || req.AccountType == "" {
		middleware.SetFlash(w, "error", "Account name and type are required")
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}

	if _, err := h.client.CreateAccount(r.Context(), h.sessions.Token(), user.ID, req); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Account could not be created"))
	} else {
		middleware.SetFlash(w, "success", "Account created")
	}
	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}

// Update handles the per-account edit form
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h.sessions.User() == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	accountID := model.AccountID(mux.Vars(r)["id"])
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}

	req := backend.UpdateAccountRequest{
		AccountName:    strings.TrimSpace(r.FormValue("account_name")),
		CurrentBalance: parseAmount(r.FormValue("current_balance")),
		SpendingLimit:  parseAmount(r.FormValue("spending_limit")),
		TotalLimit:     parseAmount(r.FormValue("total_limit")),
		CardType:       strings.TrimSpace(r.FormValue("card_type")),
	}

	if _, err := h.client.UpdateAccount(r.Context(), h.sessions.Token(), accountID, req); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Account could not be updated"))
	} else {
		middleware.SetFlash(w, "success", "Account updated")
	}
	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}

// Delete handles account removal
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.sessions.User() == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	accountID := model.AccountID(mux.Vars(r)["id"])
	if err := h.client.DeleteAccount(r.Context(), h.sessions.Token(), accountID); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Account could not be deleted"))
	} else {
		middleware.SetFlash(w, "success", "Account deleted")
	}
	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}

// parseAmount parses a form amount field; malformed input counts as zero
// and is left for the backend to validate
func parseAmount(s string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return amount
}
