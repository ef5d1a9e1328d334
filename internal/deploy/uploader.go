package deploy

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

// Upload stores the artifact's file under a new revision key and returns
// that key. The index key is left untouched; the new revision serves no
// traffic until activated.
//
// When the revision identifier already exists and opts.Overwrite is false,
// Upload fails with DuplicateRevisionError without writing anything. The
// existence check and the write are not atomic: two concurrent uploads of
// the same identifier can both pass the check, which object storage gives
// us no primitive to prevent.
func (d *Deployer) Upload(ctx context.Context, artifact types.Artifact, opts Options) (string, error) {
	revisions, err := d.Revisions(ctx, artifact, opts)
	if err != nil {
		return "", err
	}

	if !opts.Overwrite {
		for _, rev := range revisions {
			if rev.ID == artifact.Revision {
				return "", &DuplicateRevisionError{Revision: artifact.Revision}
			}
		}
	}

	body, err := os.ReadFile(artifact.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", artifact.Path, err)
	}

	key := RevisionKey(artifact)
	input := &provider.PutInput{
		Bucket:       opts.Bucket,
		Key:          key,
		Body:         body,
		ContentType:  contentTypeFor(artifact.Pattern, body, opts.ContentType),
		CacheControl: opts.CacheControl,
		ACL:          opts.ACL,
		SSE:          opts.SSE,
	}
	if matchesAny(artifact.Pattern, opts.GzipPatterns) {
		input.ContentEncoding = "gzip"
	}

	if err := d.store.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return key, nil
}

// contentTypeFor infers a content type from the artifact name, then from
// the payload itself, falling back to the configured default.
func contentTypeFor(name string, body []byte, fallback string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	if mtype := mimetype.Detect(body); !mtype.Is("application/octet-stream") {
		return mtype.String()
	}
	if fallback == "" {
		fallback = DefaultContentType
	}
	return fallback
}

// matchesAny reports whether the artifact name matches one of the glob
// patterns. A malformed pattern is treated as a literal name.
func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
		if p == name {
			return true
		}
	}
	return false
}
