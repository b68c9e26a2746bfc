package cmd

import (
	"fmt"

	"github.com/fieldbase/admin/internal/navigation"
	"github.com/spf13/cobra"
)

var navValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a menu file",
	Long: `Validate a sidebar menu YAML file. Every section needs a unique
alphanumeric id, a label and at least one link; every link path must start
with "/".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := navigation.Load(fs, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d sections, %d paths\n",
			args[0], len(menu.Sections), len(menu.Paths()))
		return nil
	},
}

func init() {
	navCmd.AddCommand(navValidateCmd)
}
