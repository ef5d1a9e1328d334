package deploy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

var testArtifact = types.Artifact{
	Prefix:   "app",
	Pattern:  "index.html",
	Revision: "v1",
	Path:     "index.html",
}

var testOptions = Options{Bucket: testBucket}

func headInput() *provider.HeadInput {
	return &provider.HeadInput{Bucket: testBucket, Key: "app/index.html"}
}

func revisionObject(rev, etag string, modified time.Time) types.Object {
	return types.Object{
		Key:          "app/index.html:" + rev,
		ETag:         etag,
		LastModified: modified,
	}
}

func TestRevisionsOrderedNewestFirst(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{
		Objects: []types.Object{
			revisionObject("v1", `"e1"`, t1),
			revisionObject("v3", `"e3"`, t3),
			revisionObject("v2", `"e2"`, t2),
		},
	}, nil)
	store.On("HeadObject", mock.Anything, headInput()).Return(nil, nil)

	revisions, err := New(store).Revisions(context.Background(), testArtifact, testOptions)
	require.NoError(t, err)

	require.Len(t, revisions, 3)
	assert.Equal(t, "v3", revisions[0].ID)
	assert.Equal(t, "v2", revisions[1].ID)
	assert.Equal(t, "v1", revisions[2].ID)
}

func TestRevisionsActiveDetection(t *testing.T) {
	now := time.Now()

	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{
		Objects: []types.Object{
			revisionObject("4", `"aaa"`, now.Add(-2*time.Hour)),
			revisionObject("5", `"bbb"`, now.Add(-time.Hour)),
			revisionObject("6", `"ccc"`, now),
		},
	}, nil)
	store.On("HeadObject", mock.Anything, headInput()).
		Return(&types.Object{Key: "app/index.html", ETag: "bbb"}, nil)

	revisions, err := New(store).Revisions(context.Background(), testArtifact, testOptions)
	require.NoError(t, err)

	active := 0
	for _, rev := range revisions {
		if rev.Active {
			active++
			// quoting differences between Head and List must not matter
			assert.Equal(t, "5", rev.ID)
		}
	}
	assert.Equal(t, 1, active)
}

func TestRevisionsNoneActiveWhenIndexMissing(t *testing.T) {
	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{
		Objects: []types.Object{revisionObject("v1", `"e1"`, time.Now())},
	}, nil)
	store.On("HeadObject", mock.Anything, headInput()).Return(nil, nil)

	revisions, err := New(store).Revisions(context.Background(), testArtifact, testOptions)
	require.NoError(t, err)

	require.Len(t, revisions, 1)
	assert.False(t, revisions[0].Active)
}

func TestRevisionsSingleActiveOnDuplicateContent(t *testing.T) {
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{
		Objects: []types.Object{
			revisionObject("v1", `"same"`, older),
			revisionObject("v2", `"same"`, newer),
		},
	}, nil)
	store.On("HeadObject", mock.Anything, headInput()).
		Return(&types.Object{Key: "app/index.html", ETag: `"same"`}, nil)

	revisions, err := New(store).Revisions(context.Background(), testArtifact, testOptions)
	require.NoError(t, err)

	require.Len(t, revisions, 2)
	assert.True(t, revisions[0].Active)
	assert.False(t, revisions[1].Active)
}

func TestRevisionsPropagatesHeadErrors(t *testing.T) {
	probeErr := errors.New("access denied")

	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{}, nil)
	store.On("HeadObject", mock.Anything, headInput()).Return(nil, probeErr)

	_, err := New(store).Revisions(context.Background(), testArtifact, testOptions)
	assert.ErrorIs(t, err, probeErr)
}
