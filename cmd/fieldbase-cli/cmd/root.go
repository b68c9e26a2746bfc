package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is where menu files are read from. Tests swap in a memory filesystem.
var fs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "fieldbase-cli",
	Short: "FieldBase admin CLI tool",
	Long: `fieldbase-cli is a command-line companion for the FieldBase admin front-end.

Available commands:
  nav      Inspect and validate the sidebar navigation menu
  token    Check a bearer token against the backend
  version  Print the CLI version

Use "fieldbase-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
