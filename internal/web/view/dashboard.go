package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/finboard/finboard/internal/model"
)

// DashboardData holds everything the dashboard page shows
type DashboardData struct {
	PageData
	Accounts  *model.AccountList
	Wallet    *model.WalletInfo
	Recent    []model.Transaction
	Chart     *model.ChartData
	Stats     *model.Statistics
	LoadError string
}

// Dashboard renders the authenticated landing page
func Dashboard(data DashboardData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<h1>Dashboard</h1>
`)
		if data.LoadError != "" {
			hw.printf(`<p class="load-error">%s</p>
`, esc(data.LoadError))
		}

		if data.Accounts != nil {
			hw.printf(`<section class="accounts-summary">
<h2>Accounts</h2>
<p class="total-balance">Total balance: %s</p>
<ul>
`, money(data.Accounts.TotalBalance))
			for _, a := range data.Accounts.Accounts {
				hw.printf(`<li class="account-card">%s <span class="amount">%s</span></li>
`, esc(a.AccountName), money(a.CurrentBalance))
			}
			hw.raw(`</ul>
</section>
`)
		}

		if data.Wallet != nil {
			hw.printf(`<section class="wallet">
<h2>Wallet</h2>
<p>%s %s, balance %s, spent %s of %s</p>
</section>
`, esc(data.Wallet.CardType), esc(data.Wallet.OwnerName),
				money(data.Wallet.Balance), money(data.Wallet.UsedAmount), money(data.Wallet.SpendingLimit))
		}

		if len(data.Recent) > 0 {
			hw.raw(`<section class="recent-transactions">
<h2>Recent transactions</h2>
<table>
<thead><tr><th>Business</th><th>Date</th><th>Amount</th><th>Status</th></tr></thead>
<tbody>
`)
			for _, t := range data.Recent {
				hw.printf(`<tr class="txn txn-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`, esc(t.Status), esc(t.BusinessName), esc(t.Date), money(t.Amount), esc(t.Status))
			}
			hw.raw(`</tbody>
</table>
</section>
`)
		}

		if data.Chart != nil {
			hw.raw(`<section class="chart">
<h2>Income vs expense</h2>
<table>
<thead><tr><th>Month</th><th>Income</th><th>Expense</th></tr></thead>
<tbody>
`)
			for i, m := range data.Chart.Months {
				var income, expense float64
				if i < len(data.Chart.Income) {
					income = data.Chart.Income[i]
				}
				if i < len(data.Chart.Expense) {
					expense = data.Chart.Expense[i]
				}
				hw.printf(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>
`, esc(m), money(income), money(expense))
			}
			hw.raw(`</tbody>
</table>
</section>
`)
		}

		if data.Stats != nil {
			hw.printf(`<section class="statistics">
<h2>Spending by category</h2>
<p>Total: %s</p>
<ul>
`, money(data.Stats.Total))
			for _, s := range data.Stats.Categories {
				hw.printf(`<li class="stat">%s: %s (%.1f%%)</li>
`, esc(s.Label), money(s.Amount), s.Percentage)
			}
			hw.raw(`</ul>
</section>
`)
		}

		return hw.err
	})

	return page(data.PageData, body)
}
