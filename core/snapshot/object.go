package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/blusalice3/sokubaikai/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore persists snapshots as objects in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
}

// NewObjectStore creates a bucket-backed snapshot store. The bucket is
// created on first use if it does not exist.
func NewObjectStore(client storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// Save uploads the blob, creating the bucket if needed.
func (s *ObjectStore) Save(ctx context.Context, name string, data []byte) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to put snapshot %s: %w", name, err)
	}
	return nil
}

// Load downloads the blob. A missing object or bucket maps to ErrNotFound.
func (s *ObjectStore) Load(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		if isMissing(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// The minio client reports a missing key lazily, on first read.
		if isMissing(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	return data, nil
}

func isMissing(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
