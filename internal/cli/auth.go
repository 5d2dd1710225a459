package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finboard/finboard/internal/backend"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := sessions.Login(cmd.Context(), email, password)
			if !result.OK {
				return fmt.Errorf("%s", result.Message)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged in as " + result.User.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	var first, last, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := sessions.Register(cmd.Context(), backend.RegisterRequest{
				FirstName: first,
				LastName:  last,
				Email:     email,
				Password:  password,
			})
			if !result.OK {
				return fmt.Errorf("%s", result.Message)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Registered and logged in as " + result.User.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last", "", "Last name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions.Logout()
			NewOutput(cfg.Output).PrintMessage("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(user)
			return nil
		},
	}
}
