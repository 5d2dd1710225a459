package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/finboard/finboard/internal/model"
)

// TransactionsData holds the transaction history page state
type TransactionsData struct {
	PageData
	Page      *model.TransactionPage
	LoadError string
}

// Transactions renders the paged transaction history
func Transactions(data TransactionsData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<h1>Transactions</h1>
`)
		if data.LoadError != "" {
			hw.printf(`<p class="load-error">%s</p>
`, esc(data.LoadError))
		}

		if data.Page != nil {
			hw.raw(`<table>
<thead><tr><th>Business</th><th>Date</th><th>Amount</th><th>Type</th><th>Status</th><th></th></tr></thead>
<tbody>
`)
			for _, t := range data.Page.Transactions {
				hw.printf(`<tr class="txn txn-%s">
<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td>
<form action="/transactions/%s/status" method="post" class="txn-status">
<select name="status">
<option value="pending">pending</option>
<option value="success">success</option>
<option value="failed">failed</option>
</select>
<button type="submit">Update</button>
</form>
<form action="/transactions/%s/delete" method="post" class="txn-delete">
<button type="submit">Delete</button>
</form>
</td>
</tr>
`, esc(t.Status), esc(t.BusinessName), esc(t.Date), money(t.Amount), esc(t.Type), esc(t.Status),
					esc(string(t.ID)), esc(string(t.ID)))
			}
			hw.raw(`</tbody>
</table>
`)

			if data.Page.TotalPages > 1 {
				hw.raw(`<nav class="pager">`)
				if data.Page.Page > 0 {
					hw.printf(`<a href="/transactions?page=%d">Previous</a> `, data.Page.Page-1)
				}
				hw.printf(`<span>Page %d of %d</span>`, data.Page.Page+1, data.Page.TotalPages)
				if data.Page.Page+1 < data.Page.TotalPages {
					hw.printf(` <a href="/transactions?page=%d">Next</a>`, data.Page.Page+1)
				}
				hw.raw(`</nav>
`)
			}
		}

		hw.raw(`<h2>New transaction</h2>
<form action="/transactions" method="post" class="txn-create">
<label>Business <input type="text" name="business_name" required></label>
<label>Amount <input type="number" step="0.01" name="amount" required></label>
<label>Type <select name="type"><option value="payment">payment</option><option value="deposit">deposit</option></select></label>
<label>Category <input type="text" name="category"></label>
<button type="submit">Add</button>
</form>
`)
		return hw.err
	})

	return page(data.PageData, body)
}
