package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/finboard/finboard/internal/model"
)

// AccountsData holds the accounts management page state
type AccountsData struct {
	PageData
	Accounts  *model.AccountList
	LoadError string
}

// Accounts renders the account management page
func Accounts(data AccountsData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<h1>Accounts</h1>
`)
		if data.LoadError != "" {
			hw.printf(`<p class="load-error">%s</p>
`, esc(data.LoadError))
		}

		if data.Accounts != nil {
			hw.printf(`<p class="total-balance">Total balance: %s</p>
<table>
<thead><tr><th>Name</th><th>Type</th><th>Balance</th><th></th></tr></thead>
<tbody>
`, money(data.Accounts.TotalBalance))
			for _, a := range data.Accounts.Accounts {
				hw.printf(`<tr class="account-row">
<td>%s</td><td>%s</td><td>%s</td>
<td>
<form action="/accounts/%s" method="post" class="account-update">
<input type="text" name="account_name" value="%s">
<input type="number" step="0.01" name="current_balance" value="%.2f">
<input type="number" step="0.01" name="spending_limit" value="%.2f">
<input type="number" step="0.01" name="total_limit" value="%.2f">
<input type="text" name="card_type" value="%s">
<button type="submit">Save</button>
</form>
<form action="/accounts/%s/delete" method="post" class="account-delete">
<button type="submit">Delete</button>
</form>
</td>
</tr>
`, esc(a.AccountName), esc(a.AccountType), money(a.CurrentBalance),
					esc(string(a.ID)), esc(a.AccountName), a.CurrentBalance, a.SpendingLimit, a.TotalLimit, esc(a.CardType),
					esc(string(a.ID)))
			}
			hw.raw(`</tbody>
</table>
`)
		}

		hw.raw(`<h2>New account</h2>
<form action="/accounts" method="post" class="account-create">
<label>Name <input type="text" name="account_name" required></label>
<label>Type <input type="text" name="account_type" required></label>
<label>Initial balance <input type="number" step="0.01" name="initial_balance" value="0"></label>
<button type="submit">Create</button>
</form>
`)
		return hw.err
	})

	return page(data.PageData, body)
}
