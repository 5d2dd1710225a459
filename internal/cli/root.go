package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/model"
	"github.com/finboard/finboard/internal/session"
)

var (
	cfg      *Config
	client   *backend.Client
	sessions *session.Manager
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "finboard",
		Short: "CLI for the finboard finance dashboard backend",
		Long: `finboard is a CLI for the personal-finance dashboard backend.

It covers the same operations as the web frontend: authentication,
accounts, transactions, charts, statistics and profile management.
The session token is persisted to a token file between invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}

			client = backend.New(cfg.BackendURL)
			sessions = session.New(client, session.NewFileTokenStore(cfg.TokenFile), logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "Backend URL (env: FINBOARD_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: FINBOARD_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newTxnCmd())
	rootCmd.AddCommand(newProfileCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// requireUser revalidates the session and returns the current user, or an
// error telling the caller to log in
func requireUser(ctx context.Context) (*model.User, error) {
	if sessions.Token() == "" {
		return nil, fmt.Errorf("not logged in, run 'finboard login' first")
	}
	user := sessions.CurrentUser(ctx)
	if user == nil {
		return nil, fmt.Errorf("session expired, run 'finboard login' again")
	}
	return user, nil
}
