package middleware

import (
	"net/http"

	"github.com/finboard/finboard/internal/session"
)

// GuardPaths is the route guard's path configuration: the two
// unauthenticated destinations and the default authenticated landing page
type GuardPaths struct {
	Login    string
	Register string
	Home     string
}

// DefaultGuardPaths returns the standard path set
func DefaultGuardPaths() GuardPaths {
	return GuardPaths{
		Login:    "/login",
		Register: "/register",
		Home:     "/",
	}
}

// Decide evaluates one navigation attempt. It returns ok=true when the
// navigation may proceed unchanged, otherwise the path to redirect to.
// Pure over its two inputs; it never consults the network.
func (p GuardPaths) Decide(authenticated bool, dest string) (redirect string, ok bool) {
	authPage := dest == p.Login || dest == p.Register

	if !authenticated && !authPage {
		return p.Login, false
	}
	if authenticated && authPage {
		return p.Home, false
	}
	return "", true
}

// Guard returns middleware applying the route guard to every navigation.
// It only reads the already-resolved authentication state; the session
// middleware is responsible for any revalidation beforehand.
func Guard(sessions *session.Manager, paths GuardPaths) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redirect, ok := paths.Decide(sessions.IsAuthenticated(), r.URL.Path); !ok {
				http.Redirect(w, r, redirect, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
