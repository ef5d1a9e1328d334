package provider

import (
	"context"
	"errors"

	"github.com/vietdv277/nimbus/pkg/types"
)

// Common errors
var (
	ErrNotConfigured    = errors.New("provider not configured")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
)

// PutInput contains parameters for writing an object
type PutInput struct {
	Bucket          string
	Key             string
	Body            []byte
	ContentType     string
	CacheControl    string
	ContentEncoding string
	ACL             string
	SSE             string // server-side encryption algorithm, empty to disable
}

// ListInput contains parameters for a single listing page
type ListInput struct {
	Bucket string
	Prefix string
	Marker string // start listing after this key; empty for the first page
}

// HeadInput contains parameters for a single-object metadata probe
type HeadInput struct {
	Bucket string
	Key    string
}

// CopyInput contains parameters for a server-side copy
type CopyInput struct {
	Bucket    string
	SourceKey string
	DestKey   string
	ACL       string
	SSE       string
}

// ObjectStore defines the interface for object storage operations
type ObjectStore interface {
	// PutObject writes a single object
	PutObject(ctx context.Context, input *PutInput) error

	// ListObjects returns one page of objects under a prefix. Callers follow
	// ObjectPage.Truncated/NextMarker to enumerate further pages.
	ListObjects(ctx context.Context, input *ListInput) (*types.ObjectPage, error)

	// HeadObject returns metadata for a single object. A missing object is
	// not an error: implementations return (nil, nil).
	HeadObject(ctx context.Context, input *HeadInput) (*types.Object, error)

	// CopyObject performs a server-side copy within a bucket
	CopyObject(ctx context.Context, input *CopyInput) error
}
