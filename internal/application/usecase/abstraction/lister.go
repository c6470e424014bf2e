package abstraction

import (
	"context"

	"snapshare/internal/domain/dto"
)

type Lister interface {
	ListPhotos(ctx context.Context, sessionID string) (dto.PhotoList, int, error)
}
