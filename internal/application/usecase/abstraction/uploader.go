package abstraction

import (
	"context"

	"snapshare/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, req entity.UploadRequest) (entity.UploadResult, error)
}
