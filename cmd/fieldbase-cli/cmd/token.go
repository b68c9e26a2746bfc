package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldbase/admin/internal/backend"
	"github.com/fieldbase/admin/internal/config"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/spf13/cobra"
)

var (
	tokenAPI     string
	tokenTimeout time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Work with backend bearer tokens",
}

var tokenCheckCmd = &cobra.Command{
	Use:   "check <token>",
	Short: "Check a bearer token against the backend",
	Long: `Send the token to the backend's validate-token endpoint, exactly as the
admin server does at boot, and report whether it is accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), tokenTimeout)
		defer cancel()

		client := backend.NewClient(tokenAPI, tokenTimeout)
		err := client.ValidateToken(ctx, args[0])
		switch {
		case err == nil:
			fmt.Fprintln(cmd.OutOrStdout(), "✅ token is valid")
			return nil
		case errors.Is(err, domain.ErrInvalidToken):
			fmt.Fprintln(cmd.OutOrStdout(), "❌ token was rejected")
			return err
		default:
			return fmt.Errorf("could not reach the backend: %w", err)
		}
	},
}

func init() {
	tokenCheckCmd.Flags().StringVar(&tokenAPI, "api", config.DefaultAPIBaseURL, "backend base URL")
	tokenCheckCmd.Flags().DurationVar(&tokenTimeout, "timeout", config.DefaultBackendTimeout, "request timeout")
	tokenCmd.AddCommand(tokenCheckCmd)
	rootCmd.AddCommand(tokenCmd)
}
