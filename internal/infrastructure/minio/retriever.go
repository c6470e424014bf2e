package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

func (s *Store) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		cancel()

		return nil, fmt.Errorf("get object: %w", err)
	}

	// GetObject is lazy, surface a missing key now rather than mid-read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		cancel()

		return nil, fmt.Errorf("stat object: %w", err)
	}

	return &cancelOnClose{ReadCloser: obj, cancel: cancel}, nil
}
