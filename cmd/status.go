package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current target and authentication status",
	Long: `Display the active deploy target and verify that the configured AWS
credentials work.

Examples:
  nbs status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	tgt, tgtName, err := currentTarget()
	if err != nil {
		return err
	}

	fmt.Println("Current Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	if tgt == nil {
		fmt.Println("Target:   " + ui.MutedStyle.Render("(not set)"))
		fmt.Println()
		fmt.Println("No target configured. Define one in ~/.nimbus.yaml and run:")
		fmt.Println("  nbs use <target>")
		return nil
	}

	fmt.Printf("Target:   %s\n", ui.HeaderStyle.Render(tgtName))
	fmt.Printf("Bucket:   %s\n", ui.KeyStyle.Render(tgt.Bucket))
	if tgt.Prefix != "" {
		fmt.Printf("Prefix:   %s\n", tgt.Prefix)
	}
	if tgt.Profile != "" {
		fmt.Printf("Profile:  %s\n", tgt.Profile)
	}
	if tgt.Region != "" {
		fmt.Printf("Region:   %s\n", tgt.Region)
	}
	fmt.Println()

	// Try to get caller identity
	fmt.Print("Auth:     ")
	ctx := context.Background()
	client, err := newClientForTarget(ctx, tgt)
	if err != nil {
		fmt.Println(ui.InactiveStyle.Render("✗ Not configured"))
		fmt.Printf("          %s\n", ui.MutedStyle.Render(err.Error()))
		return nil
	}

	identity, err := client.GetCallerIdentity(ctx)
	if err != nil {
		fmt.Println(ui.InactiveStyle.Render("✗ Not authenticated"))
		fmt.Printf("          %s\n", ui.MutedStyle.Render(err.Error()))
		fmt.Println()
		fmt.Println("To authenticate:")
		fmt.Printf("  aws sso login --profile %s\n", tgt.Profile)
		return nil
	}

	fmt.Println(ui.ActiveStyle.Render("✓ Authenticated"))
	fmt.Printf("Account:  %s\n", identity.Account)
	fmt.Printf("Identity: %s\n", identity.Arn)
	return nil
}
