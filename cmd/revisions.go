package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/aws"
	"github.com/vietdv277/nimbus/internal/deploy"
	"github.com/vietdv277/nimbus/internal/ui"
	"github.com/vietdv277/nimbus/pkg/types"
)

var revisionsCmd = &cobra.Command{
	Use:     "revisions",
	Aliases: []string{"rev"},
	Short:   "Inspect uploaded revisions",
	Long: `Inspect the revisions uploaded for an artifact.

The ledger is built fresh from the bucket on every call; nothing is
cached locally.`,
}

var revisionsLsCmd = &cobra.Command{
	Use:     "ls <name>",
	Aliases: []string{"list"},
	Short:   "List revisions of an artifact",
	Long: `List every uploaded revision of an artifact, newest first, marking the
one currently served under the stable key.

Examples:
  nbs revisions ls index.html
  nbs revisions ls bundle.js --prefix assets/`,
	Args: cobra.ExactArgs(1),
	RunE: runRevisionsList,
}

var revisionsFlags deployFlags

func init() {
	rootCmd.AddCommand(revisionsCmd)
	revisionsCmd.AddCommand(revisionsLsCmd)
	revisionsFlags.register(revisionsLsCmd)
}

func runRevisionsList(cmd *cobra.Command, args []string) error {
	tgt, _, err := currentTarget()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClientForTarget(ctx, tgt)
	if err != nil {
		return err
	}

	opts, prefix, err := buildOptions(ctx, client, tgt, &revisionsFlags)
	if err != nil {
		return err
	}

	artifact := types.Artifact{
		Pattern: args[0],
		Prefix:  prefix,
	}

	deployer := deploy.New(aws.NewObjectStore(client))
	revisions, err := deployer.Revisions(ctx, artifact, opts)
	if err != nil {
		return err
	}

	ui.PrintRevisionTable(revisions)
	return nil
}
