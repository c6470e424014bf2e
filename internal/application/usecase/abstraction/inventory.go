package abstraction

import (
	"context"

	"snapshare/internal/domain/dto"
)

type Inventory interface {
	ListObjects(ctx context.Context, prefix string) (dto.ObjectList, int, error)
}
