package deploy

import (
	"context"
	"fmt"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

// Activate promotes a previously uploaded revision to be the object served
// at the index key and returns that key. The promotion is a server-side
// copy, so no file bytes are re-transmitted and the index object's
// fingerprint becomes exactly the revision's, which is what active
// detection relies on. The revision key itself is untouched, so an older
// revision can always be re-activated.
//
// Activating an identifier with no uploaded object fails with
// RevisionNotFoundError and performs no copy.
func (d *Deployer) Activate(ctx context.Context, artifact types.Artifact, opts Options) (string, error) {
	revisions, err := d.Revisions(ctx, artifact, opts)
	if err != nil {
		return "", err
	}

	found := false
	for _, rev := range revisions {
		if rev.ID == artifact.Revision {
			found = true
			break
		}
	}
	if !found {
		return "", &RevisionNotFoundError{Revision: artifact.Revision}
	}

	dst := IndexKey(artifact)
	err = d.store.CopyObject(ctx, &provider.CopyInput{
		Bucket:    opts.Bucket,
		SourceKey: RevisionKey(artifact),
		DestKey:   dst,
		ACL:       opts.ACL,
		SSE:       opts.SSE,
	})
	if err != nil {
		return "", fmt.Errorf("failed to activate revision %s: %w", artifact.Revision, err)
	}

	return dst, nil
}
