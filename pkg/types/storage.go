package types

import "time"

// Object represents an object in storage
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	ETag         string    `json:"etag"`
}

// ObjectPage is a single page of a bucket listing
type ObjectPage struct {
	Objects    []Object
	Truncated  bool
	NextMarker string // may be empty even when Truncated is true
}

// Artifact identifies one deployable file and the revision it is deployed under
type Artifact struct {
	Pattern  string // object name under the prefix, e.g. "index.html"
	Path     string // local file path to upload
	Revision string // caller-supplied revision tag
	Prefix   string // key prefix inside the bucket
}

// Revision is one uploaded copy of an artifact
type Revision struct {
	ID           string    `json:"id"`
	LastModified time.Time `json:"last_modified"`
	Active       bool      `json:"active"` // currently served at the index key
}
