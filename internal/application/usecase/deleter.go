package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"snapshare/internal/domain/repository/database"
	"snapshare/internal/domain/repository/storage"
	"snapshare/pkg/logger"
)

// Deleter implements the Deleter abstraction. The soft-delete flag decides
// visibility; payload removal is best effort.
type Deleter struct {
	retriever database.Retriever
	remover   database.Remover
	store     storage.BlobStore
	now       func() time.Time
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(retriever database.Retriever, remover database.Remover, store storage.BlobStore) *Deleter {
	return &Deleter{
		retriever: retriever,
		remover:   remover,
		store:     store,
		now:       time.Now,
	}
}

// DeletePhoto removes the payload if it can and hides the record.
func (d *Deleter) DeletePhoto(ctx context.Context, id string) (int, error) {
	photo, err := d.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return http.StatusNotFound, ErrPhotoNotFound
		}
		logger.Error("failed to look up photo for deletion", "id", id, "err", err)

		return http.StatusInternalServerError, ErrDeleteFailed
	}

	if err := d.store.Delete(ctx, photo.BinaryRef); err != nil {
		logger.Warn("failed to remove photo payload, continuing with soft delete",
			"id", id, "ref", photo.BinaryRef, "err", err)
	}

	if err := d.remover.SoftDelete(ctx, id, d.now().UTC()); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return http.StatusNotFound, ErrPhotoNotFound
		}

		return http.StatusInternalServerError, ErrDeleteFailed
	}

	return http.StatusOK, nil
}
