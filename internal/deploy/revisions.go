package deploy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

// Revisions returns the revision ledger for the artifact, newest first.
// A revision is marked active when its fingerprint equals that of the
// object currently at the index key; if nothing has been activated yet, no
// revision is active. The call is read-only.
func (d *Deployer) Revisions(ctx context.Context, artifact types.Artifact, opts Options) ([]types.Revision, error) {
	var (
		objects []types.Object
		index   *types.Object
	)

	// The listing and the index probe are independent; issue them together.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		objects, err = listAll(gctx, d.store, opts.Bucket, RevisionPrefix(artifact))
		return err
	})
	g.Go(func() error {
		var err error
		index, err = d.store.HeadObject(gctx, &provider.HeadInput{
			Bucket: opts.Bucket,
			Key:    IndexKey(artifact),
		})
		if err != nil {
			return fmt.Errorf("failed to probe index key %s: %w", IndexKey(artifact), err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prefix := RevisionPrefix(artifact)
	revisions := make([]types.Revision, 0, len(objects))
	for _, obj := range objects {
		revisions = append(revisions, types.Revision{
			ID:           strings.TrimPrefix(obj.Key, prefix),
			LastModified: obj.LastModified,
			Active:       index != nil && fingerprint(obj.ETag) == fingerprint(index.ETag),
		})
	}

	sort.Slice(revisions, func(i, j int) bool {
		return revisions[i].LastModified.After(revisions[j].LastModified)
	})

	// Identical content uploaded under several revisions matches the index
	// fingerprint more than once; only the newest counts as active.
	seen := false
	for i := range revisions {
		if revisions[i].Active {
			if seen {
				revisions[i].Active = false
			}
			seen = true
		}
	}

	return revisions, nil
}

// fingerprint normalizes an ETag for comparison; S3 returns them quoted
func fingerprint(etag string) string {
	return strings.Trim(etag, `"`)
}
