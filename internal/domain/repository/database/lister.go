package database

import (
	"context"

	"snapshare/internal/domain/model"
)

// Lister defines the interface for listing visible photos, newest first.
// An empty sessionID lists every session.
type Lister interface {
	ListActive(ctx context.Context, sessionID string) ([]model.Photo, error)
}
