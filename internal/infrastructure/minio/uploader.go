package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"snapshare/internal/domain/entity"
	"snapshare/pkg/logger"
)

func (s *Store) Put(ctx context.Context, key string, body io.Reader, size int64,
	contentType string,
) (entity.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	info, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return entity.StoredObject{}, fmt.Errorf("put object: %w", err)
	}

	return entity.StoredObject{
		Ref:         info.Key,
		Key:         info.Key,
		Location:    s.objectURL(info.Key),
		Size:        info.Size,
		ContentType: contentType,
		UploadedAt:  info.LastModified,
	}, nil
}
