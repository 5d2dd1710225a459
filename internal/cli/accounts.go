package cli

import (
	"github.com/spf13/cobra"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/model"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management commands",
	}

	cmd.AddCommand(newAccountListCmd())
	cmd.AddCommand(newAccountWalletCmd())
	cmd.AddCommand(newAccountCreateCmd())
	cmd.AddCommand(newAccountUpdateCmd())
	cmd.AddCommand(newAccountDeleteCmd())

	return cmd
}

func newAccountListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts and total balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			accounts, err := client.ListAccounts(cmd.Context(), sessions.Token(), user.ID)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(accounts)
			return nil
		},
	}
}

func newAccountWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Show the wallet card",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			wallet, err := client.WalletAccount(cmd.Context(), sessions.Token(), user.ID)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(wallet)
			return nil
		},
	}
}

func newAccountCreateCmd() *cobra.Command {
	var name, accountType string
	var balance float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			account, err := client.CreateAccount(cmd.Context(), sessions.Token(), user.ID, backend.CreateAccountRequest{
				AccountName:    name,
				AccountType:    accountType,
				InitialBalance: balance,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(account)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name (required)")
	cmd.Flags().StringVar(&accountType, "type", "", "Account type (required)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Initial balance")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newAccountUpdateCmd() *cobra.Command {
	var name, cardType string
	var balance, spendingLimit, totalLimit float64

	cmd := &cobra.Command{
		Use:   "update <account-id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context()); err != nil {
				return err
			}

			account, err := client.UpdateAccount(cmd.Context(), sessions.Token(), model.AccountID(args[0]), backend.UpdateAccountRequest{
				AccountName:    name,
				CurrentBalance: balance,
				SpendingLimit:  spendingLimit,
				TotalLimit:     totalLimit,
				CardType:       cardType,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(account)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Current balance")
	cmd.Flags().Float64Var(&spendingLimit, "spending-limit", 0, "Spending limit")
	cmd.Flags().Float64Var(&totalLimit, "total-limit", 0, "Total limit")
	cmd.Flags().StringVar(&cardType, "card-type", "", "Card type")

	return cmd
}

func newAccountDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context()); err != nil {
				return err
			}

			if err := client.DeleteAccount(cmd.Context(), sessions.Token(), model.AccountID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Account deleted")
			return nil
		},
	}
}
