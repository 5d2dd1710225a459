package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SettingsData holds the profile settings page state
type SettingsData struct {
	PageData
	ProfileError  string
	PasswordError string
	AvatarError   string
}

// Settings renders the profile settings page
func Settings(data SettingsData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		var firstName, lastName, email string
		if data.User != nil {
			firstName = data.User.FirstName
			lastName = data.User.LastName
			email = data.User.Email
		}

		hw.raw(`<h1>Settings</h1>
<section class="profile">
<h2>Profile</h2>
`)
		if data.ProfileError != "" {
			hw.printf(`<p class="form-error">%s</p>
`, esc(data.ProfileError))
		}
		hw.printf(`<form action="/settings/profile" method="post">
<label>First name <input type="text" name="first_name" value="%s" required></label>
<label>Last name <input type="text" name="last_name" value="%s" required></label>
<p class="email">Email: %s</p>
<button type="submit">Save</button>
</form>
</section>
`, esc(firstName), esc(lastName), esc(email))

		hw.raw(`<section class="password">
<h2>Change password</h2>
`)
		if data.PasswordError != "" {
			hw.printf(`<p class="form-error">%s</p>
`, esc(data.PasswordError))
		}
		hw.raw(`<form action="/settings/password" method="post">
<label>Current password <input type="password" name="current_password" required></label>
<label>New password <input type="password" name="new_password" required></label>
<label>Confirm new password <input type="password" name="new_password_confirm" required></label>
<button type="submit">Change password</button>
</form>
</section>
`)

		hw.raw(`<section class="avatar">
<h2>Avatar</h2>
`)
		if data.AvatarError != "" {
			hw.printf(`<p class="form-error">%s</p>
`, esc(data.AvatarError))
		}
		hw.raw(`<form action="/settings/avatar" method="post" enctype="multipart/form-data">
<label>Image <input type="file" name="avatar" accept="image/*" required></label>
<button type="submit">Upload</button>
</form>
</section>
`)
		return hw.err
	})

	return page(data.PageData, body)
}
