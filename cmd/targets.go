package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/config"
	"github.com/vietdv277/nimbus/internal/ui"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List configured deploy targets",
	Long: `List the deploy targets defined in ~/.nimbus.yaml, marking the
currently active one.

Examples:
  nbs targets`,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(cfg.Targets) == 0 {
		fmt.Println("No targets configured.")
		fmt.Println()
		fmt.Println("Add one to ~/.nimbus.yaml, for example:")
		fmt.Println("  targets:")
		fmt.Println("    staging:")
		fmt.Println("      bucket: my-site-staging")
		fmt.Println("      prefix: app/")
		return nil
	}

	names := make([]string, 0, len(cfg.Targets))
	for name := range cfg.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tgt := cfg.Targets[name]
		marker := "  "
		display := name
		if name == cfg.CurrentTarget {
			marker = ui.ActiveStyle.Render("● ")
			display = ui.HeaderStyle.Render(name)
		}
		fmt.Printf("%s%s\n", marker, display)
		fmt.Printf("    %s\n", ui.MutedStyle.Render(fmt.Sprintf("bucket: %s  prefix: %s", tgt.Bucket, tgt.Prefix)))
	}

	return nil
}
