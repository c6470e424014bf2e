package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"

	"snapshare/internal/domain/model"
	"snapshare/internal/domain/repository/database"
	"snapshare/internal/domain/repository/storage"
	"snapshare/pkg/logger"
)

// Getter implements the Getter abstraction for serving photo payloads.
type Getter struct {
	retriever database.Retriever
	store     storage.BlobStore
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever, store storage.BlobStore) *Getter {
	return &Getter{
		retriever: retriever,
		store:     store,
	}
}

// GetPhoto returns the metadata record of a visible photo.
func (g *Getter) GetPhoto(ctx context.Context, id string) (*model.Photo, int, error) {
	photo, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, http.StatusNotFound, ErrPhotoNotFound
		}
		logger.Error("failed to look up photo", "id", id, "err", err)

		return nil, http.StatusInternalServerError, ErrReadFailed
	}

	return photo, http.StatusOK, nil
}

// ReadPhoto loads the whole payload of a visible photo into memory.
func (g *Getter) ReadPhoto(ctx context.Context, id string) (*model.Photo, []byte, int, error) {
	photo, status, err := g.GetPhoto(ctx, id)
	if err != nil {
		return nil, nil, status, err
	}

	rc, err := g.store.Get(ctx, photo.BinaryRef)
	if err != nil {
		logger.Error("failed to open photo payload", "id", id, "ref", photo.BinaryRef, "err", err)

		return nil, nil, http.StatusInternalServerError, ErrReadFailed
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		logger.Error("photo payload read interrupted", "id", id, "err", err)

		return nil, nil, http.StatusInternalServerError, ErrReadFailed
	}

	return photo, data, http.StatusOK, nil
}
