package deploy

import (
	"github.com/vietdv277/nimbus/pkg/provider"
)

// DefaultContentType is used when content-type inference comes up empty.
const DefaultContentType = "text/html"

// Deployer performs revisioned deployments of artifacts against an object
// store. Each artifact is uploaded under an immutable revision key
// (indexKey + ":" + revision) and served from the stable index key once
// activated.
type Deployer struct {
	store provider.ObjectStore
}

// New creates a Deployer backed by the given object store
func New(store provider.ObjectStore) *Deployer {
	return &Deployer{store: store}
}

// Options controls where and how an artifact is deployed
type Options struct {
	Bucket       string
	ACL          string
	CacheControl string
	Overwrite    bool     // allow re-uploading an existing revision
	GzipPatterns []string // artifact name patterns that are pre-compressed
	SSE          string   // server-side encryption algorithm, empty to disable
	ContentType  string   // fallback content type, DefaultContentType if empty
}
