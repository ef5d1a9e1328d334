package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/aws"
	"github.com/vietdv277/nimbus/internal/deploy"
	"github.com/vietdv277/nimbus/internal/ui"
	"github.com/vietdv277/nimbus/pkg/types"
)

var pushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Upload a new revision of an artifact",
	Long: `Upload a file to the target bucket under a new immutable revision key.

The live object is not changed; run 'nbs activate' to promote the
uploaded revision. Re-pushing an existing revision identifier fails
unless --overwrite is given.

Examples:
  nbs push dist/index.html --revision v42
  nbs push dist/index.html --revision $(git rev-parse --short HEAD)
  nbs push build/bundle.js.gz --revision v42 --name bundle.js.gz --gzip '*.gz'
  nbs push dist/index.html --revision v42 --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

var (
	pushFlags     deployFlags
	pushRevision  string
	pushName      string
	pushOverwrite bool
)

func init() {
	rootCmd.AddCommand(pushCmd)

	pushFlags.register(pushCmd)
	pushCmd.Flags().StringVar(&pushRevision, "revision", "", "Revision identifier for this upload")
	pushCmd.Flags().StringVar(&pushName, "name", "", "Object name under the prefix (defaults to the file's base name)")
	pushCmd.Flags().BoolVar(&pushOverwrite, "overwrite", false, "Allow re-uploading an existing revision")
	_ = pushCmd.MarkFlagRequired("revision")
}

func runPush(cmd *cobra.Command, args []string) error {
	file := args[0]

	name := pushName
	if name == "" {
		name = filepath.Base(file)
	}

	tgt, _, err := currentTarget()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClientForTarget(ctx, tgt)
	if err != nil {
		return err
	}

	opts, prefix, err := buildOptions(ctx, client, tgt, &pushFlags)
	if err != nil {
		return err
	}
	opts.Overwrite = pushOverwrite

	artifact := types.Artifact{
		Pattern:  name,
		Path:     file,
		Revision: pushRevision,
		Prefix:   prefix,
	}

	deployer := deploy.New(aws.NewObjectStore(client))
	key, err := deployer.Upload(ctx, artifact, opts)
	if err != nil {
		var dup *deploy.DuplicateRevisionError
		if errors.As(err, &dup) {
			return fmt.Errorf("%w\nPick a new identifier or re-run with --overwrite", dup)
		}
		return err
	}

	fmt.Printf("%s Uploaded %s\n", ui.ActiveStyle.Render("✓"), ui.KeyStyle.Render(key))
	fmt.Printf("  Activate it with: nbs activate %s %s\n", name, pushRevision)
	return nil
}
