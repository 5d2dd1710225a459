package middleware

import (
	"net/http"
	"time"

	"github.com/finboard/finboard/internal/session"
)

// AuthCookieName is the cookie holding the backend session token
const AuthCookieName = "auth-token"

// SetAuthCookie writes the session token cookie. Secure should be true in
// production deployments.
func SetAuthCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie expires the session token cookie. The attributes must
// mirror SetAuthCookie's so every user agent matches the two cookies up.
func ClearAuthCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Session returns middleware that syncs the session manager with the auth
// cookie, so the guard always sees the navigating client's state. A token
// surviving in the cookie is restored and revalidated via the backend
// before the route guard runs; if revalidation clears the session (expired
// or invalid token), the stale cookie is expired too. A request with no
// cookie is anonymous: any residual session in the manager belongs to a
// different client (or a cleared browser) and is dropped, never inherited.
func Session(sessions *session.Manager, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AuthCookieName)
			hasCookie := err == nil && cookie.Value != ""

			if hasCookie {
				sessions.RestoreToken(cookie.Value)
			} else if sessions.Token() != "" {
				sessions.Logout()
			}

			// Token held but user not yet confirmed: revalidate now so the
			// guard sees settled state. Cached users are not re-fetched on
			// every navigation.
			if sessions.Token() != "" && sessions.User() == nil {
				sessions.CurrentUser(r.Context())
			}

			if hasCookie && sessions.Token() == "" {
				ClearAuthCookie(w, secure)
			}

			next.ServeHTTP(w, r)
		})
	}
}
