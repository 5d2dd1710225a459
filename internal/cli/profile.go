package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finboard/finboard/internal/backend"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile management commands",
	}

	cmd.AddCommand(newProfileUpdateCmd())
	cmd.AddCommand(newProfilePasswdCmd())
	cmd.AddCommand(newProfileAvatarCmd())

	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var first, last string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your name",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := client.UpdateProfile(cmd.Context(), sessions.Token(), user.ID, backend.UpdateProfileRequest{
				FirstName: first,
				LastName:  last,
			})
			if err != nil {
				return err
			}
			sessions.ReplaceUser(updated)

			NewOutput(cfg.Output).Print(updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last", "", "Last name (required)")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")

	return cmd
}

func newProfilePasswdCmd() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			err = client.ChangePassword(cmd.Context(), sessions.Token(), user.ID, backend.ChangePasswordRequest{
				CurrentPassword: current,
				NewPassword:     next,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password (required)")
	cmd.Flags().StringVar(&next, "new", "", "New password (required)")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func newProfileAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			err = client.UploadAvatar(cmd.Context(), sessions.Token(), user.ID, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Avatar uploaded")
			return nil
		},
	}
}
