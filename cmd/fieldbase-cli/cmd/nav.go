package cmd

import (
	"github.com/spf13/cobra"
)

// navCmd represents the nav command
var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Inspect and validate the sidebar navigation menu",
	Long: `The nav command works with the sidebar menu the admin server renders.
Without a file the built-in menu is used.

Examples:
  # List the built-in menu
  fieldbase-cli nav list

  # List a menu file as JSON
  fieldbase-cli nav list --file nav.yaml --format json

  # Validate a menu file before deploying it
  fieldbase-cli nav validate nav.yaml`,
}

func init() {
	rootCmd.AddCommand(navCmd)
}
