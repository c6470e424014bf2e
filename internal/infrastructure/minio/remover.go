package minio

import (
	"context"

	"github.com/minio/minio-go/v7"

	"snapshare/pkg/logger"
)

func (s *Store) Delete(ctx context.Context, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, ref, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to remove object", "key", ref, "err", err)

		return err
	}

	return nil
}
