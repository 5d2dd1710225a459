package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/session"
	"github.com/finboard/finboard/internal/web/middleware"
	"github.com/finboard/finboard/internal/web/view"
)

// Largest accepted avatar upload
const maxAvatarBytes = 5 << 20

// SettingsHandler handles the profile settings page and actions
type SettingsHandler struct {
	sessions *session.Manager
	client   *backend.Client
	logger   *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(sessions *session.Manager, client *backend.Client, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

// Page renders the settings page
func (h *SettingsHandler) Page(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	view.Render(w, r, view.Settings(view.SettingsData{
		PageData: view.PageData{Title: "Settings", User: user, Flash: middleware.GetFlash(r.Context())},
	}))
}

// UpdateProfile handles the profile form; a successful update also
// refreshes the cached session user
func (h *SettingsHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	req := backend.UpdateProfileRequest{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
	}
	if req.FirstName == "" || req.LastName == "" {
		middleware.SetFlash(w, "error", "First and last name are required")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	updated, err := h.client.UpdateProfile(r.Context(), h.sessions.Token(), user.ID, req)
	if err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Profile could not be updated"))
	} else {
		h.sessions.ReplaceUser(updated)
		middleware.SetFlash(w, "success", "Profile updated")
	}
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

// ChangePassword handles the password form
func (h *SettingsHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	confirm := r.FormValue("new_password_confirm")

	switch {
	case current == "" || next == "":
		middleware.SetFlash(w, "error", "Current and new password are required")
	case len(next) < 8:
		middleware.SetFlash(w, "error", "New password must be at least 8 characters")
	case next != confirm:
		middleware.SetFlash(w, "error", "New passwords do not match")
	default:
		req := backend.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
		if err := h.client.ChangePassword(r.Context(), h.sessions.Token(), user.ID, req); err != nil {
			middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Password could not be changed"))
		} else {
			middleware.SetFlash(w, "success", "Password changed")
		}
	}
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

// UploadAvatar forwards the uploaded image to the backend
func (h *SettingsHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		middleware.SetFlash(w, "error", "Invalid upload")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		middleware.SetFlash(w, "error", "An image file is required")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}
	defer func() { _ = file.Close() }()

	if err := h.client.UploadAvatar(r.Context(), h.sessions.Token(), user.ID, header.Filename, file); err != nil {
		middleware.SetFlash(w, "error", backend.ErrorMessage(err, "Avatar could not be uploaded"))
	} else {
		middleware.SetFlash(w, "success", "Avatar updated")
	}
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
