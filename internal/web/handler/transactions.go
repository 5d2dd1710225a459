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

// Transactions per page in the history view
const transactionPageSize = 20

// TransactionsHandler handles the transaction history page and actions
type TransactionsHandler struct {
	sessions *session.Manager
	client   *backend.Client
	logger   *slog.Logger
}

// NewTransactionsHandler creates a new TransactionsHandler
func NewTransactionsHandler(sessions *session.Manager, client *backend.Client, logger *slog.Logger) *TransactionsHandler {
	return &TransactionsHandler{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

// List renders one page of the transaction history
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	page := 0
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	data := view.TransactionsData{
		PageData: view.PageData{Title: "Transactions", User: user, Flash: middleware.GetFlash(r.Context())},
	}

	result, err := h.client.Transactions(r.Context(), h.sessions.Token(), user.ID, page, transactionPageSize)
	if err != nil {
		h.logger.Warn("transactions load failed", slog.String("error", err.Error()))
		data.LoadError = backend.ErrorMessage(err, "Transactions could not be loaded")
	} else {
		data.Page = result
	}

	view.Render(w, r, view.Transactions(data))
}

// Create handles the new-transaction form
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.sessions.User() == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/transactions", http.StatusSeeOther)
		return
	}

	req := backend.CreateTransactionRequest{
		BusinessName: strings.TrimSpace(r.FormValue("business_name")),
		Amount:       parseAmount(r.FormValue("amount")),
		Type:         r.FormValue("type"),
		Category:     strings.TrimSpace(r.FormValue("category")),
	}
	if req.BusinessName == "" {
		middleware.SetFlash(w, "error", "Business name is required")
		http.Redirect(w, r, "/transactions", http.StatusSeeOther)
		return
	}

	if _, err := h.client.CreateTransaction(r.Context(), h.sessions.Token(), req); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Transaction could not be created"))
	} else {
		middleware.SetFlash(w, "success", "Transaction added")
	}
	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

// UpdateStatus handles the status change form
func (h *TransactionsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if h.sessions.User() == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id := model.TransactionID(mux.Vars(r)["id"])
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/transactions", http.StatusSeeOther)
		return
	}

	status := r.FormValue("status")
	switch status {
	case model.TransactionPending, model.TransactionSuccess, model.TransactionFailed:
	default:
		middleware.SetFlash(w, "error", "Unknown transaction status")
		http.Redirect(w, r, "/transactions", http.StatusSeeOther)
		return
	}

	if _, err := h.client.UpdateTransactionStatus(r.Context(), h.sessions.Token(), id, status); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Status could not be updated"))
	} else {
		middleware.SetFlash(w, "success", "Status updated")
	}
	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

// Delete handles transaction removal
func (h *TransactionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.sessions.User() == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id := model.TransactionID(mux.Vars(r)["id"])
	if err := h.client.DeleteTransaction(r.Context(), h.sessions.Token(), id); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Transaction could not be deleted"))
	} else {
		middleware.SetFlash(w, "success", "Transaction deleted")
	}
	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}
