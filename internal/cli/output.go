package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/finboard/finboard/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
		return
	}
	o.printText(data)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
		return
	}
	fmt.Println(msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.User:
		fmt.Printf("%s <%s> (id %d)\n", v.DisplayName(), v.Email, v.ID)
	case *model.AccountList:
		for _, a := range v.Accounts {
			fmt.Printf("%-12s %-24s %10.2f\n", a.ID, a.AccountName, a.CurrentBalance)
		}
		fmt.Printf("Total balance: %.2f\n", v.TotalBalance)
	case *model.Account:
		fmt.Printf("%s %s (%s) balance %.2f\n", v.ID, v.AccountName, v.AccountType, v.CurrentBalance)
	case *model.WalletInfo:
		fmt.Printf("%s %s balance %.2f, spent %.2f of %.2f\n",
			v.CardType, v.OwnerName, v.Balance, v.UsedAmount, v.SpendingLimit)
	case []model.Transaction:
		o.printTransactions(v)
	case *model.TransactionPage:
		o.printTransactions(v.Transactions)
		fmt.Printf("Page %d of %d (%d total)\n", v.Page+1, v.TotalPages, v.TotalElements)
	case *model.Transaction:
		fmt.Printf("%s %-24s %10.2f %s %s\n", v.ID, v.BusinessName, v.Amount, v.Type, v.Status)
	case *model.ChartData:
		for i, m := range v.Months {
			var income, expense float64
			if i < len(v.Income) {
				income = v.Income[i]
			}
			if i < len(v.Expense) {
				expense = v.Expense[i]
			}
			fmt.Printf("%-10s income %10.2f expense %10.2f\n", m, income, expense)
		}
	case *model.Statistics:
		for _, s := range v.Categories {
			fmt.Printf("%-20s %10.2f (%.1f%%)\n", s.Label, s.Amount, s.Percentage)
		}
		fmt.Printf("Total: %.2f\n", v.Total)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printTransactions(txns []model.Transaction) {
	for _, t := range txns {
		fmt.Printf("%s %-24s %10.2f %-8s %s\n", t.Date, t.BusinessName, t.Amount, t.Type, t.Status)
	}
}
