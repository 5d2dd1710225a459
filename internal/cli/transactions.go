package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/model"
)

func newTxnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Transaction commands",
	}

	cmd.AddCommand(newTxnRecentCmd())
	cmd.AddCommand(newTxnListCmd())
	cmd.AddCommand(newTxnChartCmd())
	cmd.AddCommand(newTxnStatsCmd())
	cmd.AddCommand(newTxnCreateCmd())
	cmd.AddCommand(newTxnStatusCmd())
	cmd.AddCommand(newTxnDeleteCmd())

	return cmd
}

func newTxnRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			txns, err := client.RecentTransactions(cmd.Context(), sessions.Token(), user.ID)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(txns)
			return nil
		},
	}
}

func newTxnListCmd() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions page by page",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.Transactions(cmd.Context(), sessions.Token(), user.ID, page, size)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number, starting at 0")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")

	return cmd
}

func newTxnChartCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show monthly income and expense totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			chart, err := client.ChartData(cmd.Context(), sessions.Token(), user.ID, year)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(chart)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to chart (default: current year)")

	return cmd
}

func newTxnStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the spending category breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			stats, err := client.Statistics(cmd.Context(), sessions.Token(), user.ID)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(stats)
			return nil
		},
	}
}

func newTxnCreateCmd() *cobra.Command {
	var business, txnType, category, accountID string
	var amount float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context()); err != nil {
				return err
			}

			txn, err := client.CreateTransaction(cmd.Context(), sessions.Token(), backend.CreateTransactionRequest{
				BusinessName: business,
				Amount:       amount,
				Type:         txnType,
				Category:     category,
				AccountID:    accountID,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(txn)
			return nil
		},
	}

	cmd.Flags().StringVar(&business, "business", "", "Business name (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount (required)")
	cmd.Flags().StringVar(&txnType, "type", "", "Transaction type (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	_ = cmd.MarkFlagRequired("business")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newTxnStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <transaction-id> <status>",
		Short: "Change a transaction's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context()); err != nil {
				return err
			}

			status := args[1]
			switch status {
			case model.TransactionPending, model.TransactionSuccess, model.TransactionFailed:
			default:
				return fmt.Errorf("invalid status %q", status)
			}

			txn, err := client.UpdateTransactionStatus(cmd.Context(), sessions.Token(), model.TransactionID(args[0]), status)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(txn)
			return nil
		},
	}
}

func newTxnDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context()); err != nil {
				return err
			}

			if err := client.DeleteTransaction(cmd.Context(), sessions.Token(), model.TransactionID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Transaction deleted")
			return nil
		},
	}
}
