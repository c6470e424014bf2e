package usecase

import (
	"context"
	"net/http"

	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/repository/storage"
	"snapshare/pkg/logger"
)

// Inventory reports what the storage backend holds, orphans included.
type Inventory struct {
	store storage.BlobStore
}

func NewInventory(store storage.BlobStore) *Inventory {
	return &Inventory{store: store}
}

func (i *Inventory) ListObjects(ctx context.Context, prefix string) (dto.ObjectList, int, error) {
	objects, err := i.store.List(ctx, prefix)
	if err != nil {
		logger.Error("failed to list stored objects", "prefix", prefix, "err", err)

		return dto.ObjectList{}, http.StatusInternalServerError, ErrInventoryFailed
	}

	out := make([]dto.ObjectDescriptor, 0, len(objects))
	for _, o := range objects {
		out = append(out, dto.ObjectDescriptor{
			Key:         o.Key,
			Size:        o.Size,
			ContentType: o.ContentType,
			UploadedAt:  o.UploadedAt.UTC().Format(isoMillis),
		})
	}

	return dto.ObjectList{Objects: out}, http.StatusOK, nil
}
