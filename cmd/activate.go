package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/aws"
	"github.com/vietdv277/nimbus/internal/deploy"
	"github.com/vietdv277/nimbus/internal/ui"
	"github.com/vietdv277/nimbus/pkg/types"
)

var activateCmd = &cobra.Command{
	Use:   "activate <name> [revision]",
	Short: "Promote an uploaded revision to be the live object",
	Long: `Promote a previously uploaded revision to be the object served under
the artifact's stable key.

Promotion is a server-side copy: no bytes are re-transmitted and the
revision object itself is untouched, so an older revision can always be
re-activated to roll back.

If no revision is given, an interactive selector over the revision
ledger is shown.

Examples:
  nbs activate index.html v42    # Activate a specific revision
  nbs activate index.html        # Pick one interactively`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runActivate,
}

var activateFlags deployFlags

func init() {
	rootCmd.AddCommand(activateCmd)
	activateFlags.register(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	name := args[0]

	tgt, _, err := currentTarget()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClientForTarget(ctx, tgt)
	if err != nil {
		return err
	}

	opts, prefix, err := buildOptions(ctx, client, tgt, &activateFlags)
	if err != nil {
		return err
	}

	artifact := types.Artifact{
		Pattern: name,
		Prefix:  prefix,
	}

	deployer := deploy.New(aws.NewObjectStore(client))

	if len(args) > 1 {
		artifact.Revision = args[1]
	} else {
		revisions, err := deployer.Revisions(ctx, artifact, opts)
		if err != nil {
			return err
		}
		selected, err := ui.SelectRevision(revisions)
		if err != nil {
			return err
		}
		artifact.Revision = selected.ID
	}

	key, err := deployer.Activate(ctx, artifact, opts)
	if err != nil {
		var notFound *deploy.RevisionNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w\nUpload it first: nbs push <file> --revision %s", notFound, artifact.Revision)
		}
		return err
	}

	fmt.Printf("%s Activated revision %s\n", ui.ActiveStyle.Render("✓"), ui.RevisionStyle.Render(artifact.Revision))
	fmt.Printf("  Now serving at %s\n", ui.KeyStyle.Render(key))
	return nil
}
