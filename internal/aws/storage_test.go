package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/nimbus/pkg/provider"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.PutObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3) ListObjects(ctx context.Context, params *s3.ListObjectsInput, optFns ...func(*s3.Options)) (*s3.ListObjectsOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.ListObjectsOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.HeadObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3) CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.CopyObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHeadObjectNotFoundIsNotAnError(t *testing.T) {
	api := new(mockS3)
	api.On("HeadObject", mock.Anything, mock.Anything).Return(nil, &s3types.NotFound{})

	store := &S3ObjectStore{api: api}
	obj, err := store.HeadObject(context.Background(), &provider.HeadInput{Bucket: "b", Key: "app/index.html"})

	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestHeadObjectHardErrorPropagates(t *testing.T) {
	hardErr := errors.New("forbidden")

	api := new(mockS3)
	api.On("HeadObject", mock.Anything, mock.Anything).Return(nil, hardErr)

	store := &S3ObjectStore{api: api}
	_, err := store.HeadObject(context.Background(), &provider.HeadInput{Bucket: "b", Key: "k"})

	assert.ErrorIs(t, err, hardErr)
}

func TestListObjectsPageMapping(t *testing.T) {
	truncated := true
	now := time.Now()
	size := int64(42)

	api := new(mockS3)
	api.On("ListObjects", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsInput) bool {
		return deref(in.Prefix) == "app/index.html:" && deref(in.Marker) == "after-this"
	})).Return(&s3.ListObjectsOutput{
		IsTruncated: &truncated,
		NextMarker:  strPtr("next"),
		Contents: []s3types.Object{
			{Key: strPtr("app/index.html:v1"), ETag: strPtr(`"e1"`), Size: &size, LastModified: &now},
		},
	}, nil)

	store := &S3ObjectStore{api: api}
	page, err := store.ListObjects(context.Background(), &provider.ListInput{
		Bucket: "b",
		Prefix: "app/index.html:",
		Marker: "after-this",
	})

	require.NoError(t, err)
	assert.True(t, page.Truncated)
	assert.Equal(t, "next", page.NextMarker)
	require.Len(t, page.Objects, 1)
	assert.Equal(t, "app/index.html:v1", page.Objects[0].Key)
	assert.Equal(t, `"e1"`, page.Objects[0].ETag)
	assert.Equal(t, size, page.Objects[0].Size)
}

func TestCopyObjectSource(t *testing.T) {
	api := new(mockS3)
	api.On("CopyObject", mock.Anything, mock.MatchedBy(func(in *s3.CopyObjectInput) bool {
		// slashes survive, the rest of the key is escaped as a URL path
		return deref(in.CopySource) == "b/app/index.html:v2" &&
			deref(in.Key) == "app/index.html" &&
			in.ACL == s3types.ObjectCannedACL("public-read")
	})).Return(&s3.CopyObjectOutput{}, nil).Once()

	store := &S3ObjectStore{api: api}
	err := store.CopyObject(context.Background(), &provider.CopyInput{
		Bucket:    "b",
		SourceKey: "app/index.html:v2",
		DestKey:   "app/index.html",
		ACL:       "public-read",
	})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestPutObjectOptionalHeaders(t *testing.T) {
	api := new(mockS3)
	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return deref(in.ContentType) == "text/html" &&
			deref(in.CacheControl) == "max-age=60" &&
			in.ContentEncoding == nil &&
			in.ServerSideEncryption == s3types.ServerSideEncryption("")
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	store := &S3ObjectStore{api: api}
	err := store.PutObject(context.Background(), &provider.PutInput{
		Bucket:       "b",
		Key:          "app/index.html:v1",
		Body:         []byte("<html></html>"),
		ContentType:  "text/html",
		CacheControl: "max-age=60",
	})

	require.NoError(t, err)
	api.AssertExpectations(t)
}
