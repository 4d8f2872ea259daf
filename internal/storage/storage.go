// Package storage abstracts the S3-compatible object store holding uploaded
// certification documents. Retrieval is presigned-URL only; the server never
// proxies object content.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size must be the exact number of bytes; ContentType and Metadata are
// optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key using streaming I/O.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL granting download access to the
	// object without further authentication.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
