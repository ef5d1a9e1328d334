package deploy

import (
	"context"
	"fmt"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

// listAll returns every object under the prefix, following truncation
// markers until the listing is exhausted. Pages are requested sequentially:
// each continuation marker depends on the previous response. When a
// truncated page carries no explicit marker, the last item's key is used,
// matching backends that omit the marker field.
func listAll(ctx context.Context, store provider.ObjectStore, bucket, prefix string) ([]types.Object, error) {
	var all []types.Object
	marker := ""

	for {
		page, err := store.ListObjects(ctx, &provider.ListInput{
			Bucket: bucket,
			Prefix: prefix,
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, err)
		}

		all = append(all, page.Objects...)

		if !page.Truncated {
			break
		}

		marker = page.NextMarker
		if marker == "" {
			if len(page.Objects) == 0 {
				// truncated but empty and markerless: nothing to continue from
				break
			}
			marker = page.Objects[len(page.Objects)-1].Key
		}
	}

	return all, nil
}
