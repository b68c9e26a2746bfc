package cmd

import (
	"fmt"

	"github.com/fieldbase/admin/cmd/fieldbase-cli/internal/navformat"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/spf13/cobra"
)

var (
	listFile   string
	listFormat string
)

var navListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sections and links of a menu",
	Long: `List every section and link of the sidebar menu.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		menu := navigation.DefaultMenu()
		if listFile != "" {
			m, err := navigation.Load(fs, listFile)
			if err != nil {
				return err
			}
			menu = m
		}

		switch listFormat {
		case "table":
			return navformat.Table(cmd.OutOrStdout(), menu)
		case "json":
			return navformat.JSON(cmd.OutOrStdout(), menu)
		default:
			return fmt.Errorf("unknown format %q (use table or json)", listFormat)
		}
	},
}

func init() {
	navListCmd.Flags().StringVarP(&listFile, "file", "f", "", "menu YAML file (defaults to the built-in menu)")
	navListCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
	navCmd.AddCommand(navListCmd)
}
