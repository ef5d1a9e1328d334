package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/config"
	"github.com/vietdv277/nimbus/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use <target>",
	Short: "Switch the active deploy target",
	Long: `Switch the active deploy target. Subsequent push, activate and
revisions commands run against it unless overridden with --target.

Examples:
  nbs use staging
  nbs use production`,
	Args: cobra.ExactArgs(1),
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.SetCurrentTarget(name); err != nil {
		return err
	}

	fmt.Printf("%s Switched to target %s\n", ui.ActiveStyle.Render("✓"), ui.HeaderStyle.Render(name))
	return nil
}
