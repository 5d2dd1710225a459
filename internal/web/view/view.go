// Package view renders the frontend's pages as templ components built
// directly on the templ runtime.
package view

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/finboard/finboard/internal/model"
)

// Flash is a one-shot notification shown on the next rendered page
type Flash struct {
	Kind    string // "success", "error" or "info"
	Message string
}

// PageData carries the fields every page shares
type PageData struct {
	Title string
	User  *model.User
	Flash *Flash
}

// Render writes a component as a full HTML response
func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// htmlWriter accumulates the first write error so page functions stay flat
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) printf(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// esc escapes a string for safe interpolation into HTML
func esc(s string) string {
	return templ.EscapeString(s)
}

// money formats an amount for display; no arithmetic happens client-side
func money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// page wraps a body component in the shared chrome: head, nav, flash
func page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.printf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - finboard</title>
</head>
<body>
`, esc(data.Title))

		hw.raw(`<nav><a href="/" class="brand">finboard</a>`)
		if data.User != nil {
			hw.printf(`<span class="nav-user">%s</span>`, esc(data.User.DisplayName()))
			hw.raw(`<a href="/accounts">Accounts</a><a href="/transactions">Transactions</a><a href="/settings">Settings</a>`)
			hw.raw(`<form action="/logout" method="post" class="nav-logout"><button type="submit">Log out</button></form>`)
		} else {
			hw.raw(`<a href="/login">Log in</a><a href="/register">Register</a>`)
		}
		hw.raw(`</nav>
`)

		if data.Flash != nil {
			hw.printf(`<div class="flash flash-%s">%s</div>
`, esc(data.Flash.Kind), esc(data.Flash.Message))
		}

		hw.raw(`<main>
`)
		if hw.err != nil {
			return hw.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main>
</body>
</html>
`)
		return hw.err
	})
}
