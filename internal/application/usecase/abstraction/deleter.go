package abstraction

import "context"

// Deleter defines the interface for soft-deleting photos.
type Deleter interface {
	DeletePhoto(ctx context.Context, id string) (int, error)
}
