package abstraction

import (
	"context"

	"snapshare/internal/domain/model"
)

// Getter defines the interface for retrieving photos and their payloads.
type Getter interface {
	GetPhoto(ctx context.Context, id string) (*model.Photo, int, error)
	ReadPhoto(ctx context.Context, id string) (*model.Photo, []byte, int, error)
}
