package deploy

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

func writeArtifactFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func emptyLedgerStore() *mockObjectStore {
	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{}, nil)
	store.On("HeadObject", mock.Anything, headInput()).Return(nil, nil)
	return store
}

func TestUploadRejectsDuplicateRevision(t *testing.T) {
	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{
		Objects: []types.Object{revisionObject("v1", `"e1"`, time.Now())},
	}, nil)
	store.On("HeadObject", mock.Anything, headInput()).Return(nil, nil)

	artifact := testArtifact
	artifact.Path = writeArtifactFile(t, "index.html", []byte("<html></html>"))

	_, err := New(store).Upload(context.Background(), artifact, testOptions)

	var dup *DuplicateRevisionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "v1", dup.Revision)
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
}

func TestUploadOverwriteAllowsDuplicate(t *testing.T) {
	store := new(mockObjectStore)
	store.On("ListObjects", mock.Anything, listInput("")).Return(&types.ObjectPage{
		Objects: []types.Object{revisionObject("v1", `"e1"`, time.Now())},
	}, nil)
	store.On("HeadObject", mock.Anything, headInput()).Return(nil, nil)
	store.On("PutObject", mock.Anything, mock.Anything).Return(nil).Once()

	artifact := testArtifact
	artifact.Path = writeArtifactFile(t, "index.html", []byte("<html></html>"))

	opts := testOptions
	opts.Overwrite = true

	key, err := New(store).Upload(context.Background(), artifact, opts)
	require.NoError(t, err)
	assert.Equal(t, "app/index.html:v1", key)
	store.AssertExpectations(t)
}

func TestUploadWriteParameters(t *testing.T) {
	content := []byte("<!doctype html><html></html>")

	var put *provider.PutInput
	store := emptyLedgerStore()
	store.On("PutObject", mock.Anything, mock.MatchedBy(func(in *provider.PutInput) bool {
		put = in
		return true
	})).Return(nil).Once()

	artifact := testArtifact
	artifact.Path = writeArtifactFile(t, "index.html", content)

	opts := Options{
		Bucket:       testBucket,
		ACL:          "public-read",
		CacheControl: "max-age=300",
		SSE:          "AES256",
	}

	key, err := New(store).Upload(context.Background(), artifact, opts)
	require.NoError(t, err)

	require.NotNil(t, put)
	assert.Equal(t, key, put.Key)
	assert.Equal(t, testBucket, put.Bucket)
	assert.Equal(t, content, put.Body)
	assert.True(t, strings.HasPrefix(put.ContentType, "text/html"))
	assert.Equal(t, "max-age=300", put.CacheControl)
	assert.Equal(t, "public-read", put.ACL)
	assert.Equal(t, "AES256", put.SSE)
	assert.Empty(t, put.ContentEncoding)
}

func TestUploadGzipPattern(t *testing.T) {
	store := emptyLedgerStore()

	var put *provider.PutInput
	store.On("PutObject", mock.Anything, mock.MatchedBy(func(in *provider.PutInput) bool {
		put = in
		return true
	})).Return(nil).Once()

	artifact := types.Artifact{
		Prefix:   "app",
		Pattern:  "index.html",
		Revision: "v1",
		Path:     writeArtifactFile(t, "index.html", []byte("<html></html>")),
	}

	opts := testOptions
	opts.GzipPatterns = []string{"*.html"}

	_, err := New(store).Upload(context.Background(), artifact, opts)
	require.NoError(t, err)
	require.NotNil(t, put)
	assert.Equal(t, "gzip", put.ContentEncoding)
}

func TestContentTypeFallback(t *testing.T) {
	// extensionless name and undetectable payload
	ct := contentTypeFor("artifact", []byte{0x00, 0x01, 0x02, 0x03}, "")
	assert.Equal(t, DefaultContentType, ct)

	ct = contentTypeFor("artifact", []byte{0x00, 0x01, 0x02, 0x03}, "application/wasm")
	assert.Equal(t, "application/wasm", ct)
}

func TestUploadMissingFile(t *testing.T) {
	store := emptyLedgerStore()

	artifact := testArtifact
	artifact.Path = filepath.Join(t.TempDir(), "missing.html")

	_, err := New(store).Upload(context.Background(), artifact, testOptions)
	assert.Error(t, err)
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
}
