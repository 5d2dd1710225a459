package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoginData holds the login page state
type LoginData struct {
	PageData
	Email string
	Error string
	Next  string
}

// Login renders the login page
func Login(data LoginData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<h1>Log in</h1>
<form action="/login" method="post" class="auth-form">
`)
		if data.Error != "" {
			hw.printf(`<p class="form-error">%s</p>
`, esc(data.Error))
		}
		hw.printf(`<label>Email <input type="email" name="email" value="%s" required></label>
<label>Password <input type="password" name="password" required></label>
<input type="hidden" name="next" value="%s">
<button type="submit">Log in</button>
</form>
<p>No account? <a href="/register">Register</a></p>
`, esc(data.Email), esc(data.Next))

		return hw.err
	})

	return page(data.PageData, body)
}

// RegisterData holds the registration page state
type RegisterData struct {
	PageData
	FirstName   string
	LastName    string
	Email       string
	Error       string
	FieldErrors map[string]string
}

// Register renders the registration page
func Register(data RegisterData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<h1>Create your account</h1>
<form action="/register" method="post" class="auth-form">
`)
		if data.Error != "" {
			hw.printf(`<p class="form-error">%s</p>
`, esc(data.Error))
		}

		field := func(label, name, typ, value string) {
			hw.printf(`<label>%s <input type="%s" name="%s" value="%s" required></label>
`, esc(label), typ, name, esc(value))
			if msg, ok := data.FieldErrors[name]; ok {
				hw.printf(`<p class="field-error">%s</p>
`, esc(msg))
			}
		}

		field("First name", "first_name", "text", data.FirstName)
		field("Last name", "last_name", "text", data.LastName)
		field("Email", "email", "email", data.Email)
		field("Password", "password", "password", "")
		field("Confirm password", "password_confirm", "password", "")

		hw.raw(`<button type="submit">Register</button>
</form>
<p>Already registered? <a href="/login">Log in</a></p>
`)
		return hw.err
	})

	return page(data.PageData, body)
}
