package deploy

import (
	"strings"

	"github.com/vietdv277/nimbus/pkg/types"
)

// JoinKey joins a prefix and an object name into a storage key. Separators
// are collapsed at the join point so that "app/" + "/index.html",
// "app" + "index.html" and "app/" + "index.html" all yield the same key.
// Keys never carry a leading or trailing slash.
func JoinKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	name = strings.Trim(name, "/")
	if prefix == "" {
		return name
	}
	if name == "" {
		return prefix
	}
	return prefix + "/" + name
}

// IndexKey returns the stable key the artifact is served from
func IndexKey(a types.Artifact) string {
	return JoinKey(a.Prefix, a.Pattern)
}

// RevisionKey returns the key one specific revision is stored under
func RevisionKey(a types.Artifact) string {
	return IndexKey(a) + ":" + a.Revision
}

// RevisionPrefix returns the listing prefix covering every revision of the
// artifact. Stripping it from a listed key recovers the revision identifier.
func RevisionPrefix(a types.Artifact) string {
	return IndexKey(a) + ":"
}
