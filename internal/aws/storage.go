package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

// s3API captures the S3 client methods of interest. This should help mock
// API calls as well.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjects(ctx context.Context, params *s3.ListObjectsInput, optFns ...func(*s3.Options)) (*s3.ListObjectsOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3ObjectStore implements the ObjectStore interface for AWS S3
type S3ObjectStore struct {
	api s3API
}

// NewObjectStore creates an object store backed by the client's S3 connection
func NewObjectStore(client *Client) *S3ObjectStore {
	return &S3ObjectStore{api: client.S3}
}

// PutObject writes a single object
func (s *S3ObjectStore) PutObject(ctx context.Context, input *provider.PutInput) error {
	put := &s3.PutObjectInput{
		Bucket: &input.Bucket,
		Key:    &input.Key,
		Body:   bytes.NewReader(input.Body),
	}
	if input.ContentType != "" {
		put.ContentType = &input.ContentType
	}
	if input.CacheControl != "" {
		put.CacheControl = &input.CacheControl
	}
	if input.ContentEncoding != "" {
		put.ContentEncoding = &input.ContentEncoding
	}
	if input.ACL != "" {
		put.ACL = s3types.ObjectCannedACL(input.ACL)
	}
	if input.SSE != "" {
		put.ServerSideEncryption = s3types.ServerSideEncryption(input.SSE)
	}

	if _, err := s.api.PutObject(ctx, put); err != nil {
		return fmt.Errorf("failed to put object %s: %w", input.Key, err)
	}
	return nil
}

// ListObjects returns one page of objects under a prefix
func (s *S3ObjectStore) ListObjects(ctx context.Context, input *provider.ListInput) (*types.ObjectPage, error) {
	list := &s3.ListObjectsInput{
		Bucket: &input.Bucket,
	}
	if input.Prefix != "" {
		list.Prefix = &input.Prefix
	}
	if input.Marker != "" {
		list.Marker = &input.Marker
	}

	output, err := s.api.ListObjects(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	page := &types.ObjectPage{
		NextMarker: deref(output.NextMarker),
	}
	if output.IsTruncated != nil {
		page.Truncated = *output.IsTruncated
	}
	for _, obj := range output.Contents {
		o := types.Object{
			Key:          deref(obj.Key),
			ETag:         deref(obj.ETag),
			LastModified: safeTime(obj.LastModified),
		}
		if obj.Size != nil {
			o.Size = *obj.Size
		}
		page.Objects = append(page.Objects, o)
	}
	return page, nil
}

// HeadObject returns metadata for a single object, or (nil, nil) when
// nothing exists at the key. Only a hard failure is an error.
func (s *S3ObjectStore) HeadObject(ctx context.Context, input *provider.HeadInput) (*types.Object, error) {
	output, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &input.Bucket,
		Key:    &input.Key,
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to head object %s: %w", input.Key, err)
	}

	obj := &types.Object{
		Key:          input.Key,
		ETag:         deref(output.ETag),
		LastModified: safeTime(output.LastModified),
	}
	if output.ContentLength != nil {
		obj.Size = *output.ContentLength
	}
	return obj, nil
}

// CopyObject performs a server-side copy within a bucket
func (s *S3ObjectStore) CopyObject(ctx context.Context, input *provider.CopyInput) error {
	source := (&url.URL{Path: input.Bucket + "/" + input.SourceKey}).EscapedPath()

	copyInput := &s3.CopyObjectInput{
		Bucket:     &input.Bucket,
		Key:        &input.DestKey,
		CopySource: &source,
	}
	if input.ACL != "" {
		copyInput.ACL = s3types.ObjectCannedACL(input.ACL)
	}
	if input.SSE != "" {
		copyInput.ServerSideEncryption = s3types.ServerSideEncryption(input.SSE)
	}

	if _, err := s.api.CopyObject(ctx, copyInput); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", input.SourceKey, input.DestKey, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func safeTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
