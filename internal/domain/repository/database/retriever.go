package database

import (
	"context"

	"snapshare/internal/domain/model"
)

// Retriever looks up photos that have not been soft-deleted.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Photo, error)
}
