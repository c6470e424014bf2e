package storage

import (
	"context"
	"io"

	"snapshare/internal/domain/entity"
)

// BlobStore is the binary payload capability shared by every backend.
// Ref values are opaque to callers: an object key for bucket stores, a
// file id for GridFS.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (entity.StoredObject, error)
	Get(ctx context.Context, ref string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]entity.StoredObject, error)
	Delete(ctx context.Context, ref string) error
}
