package minio

import (
	"context"

	"github.com/minio/minio-go/v7"

	"snapshare/internal/domain/entity"
)

func (s *Store) List(ctx context.Context, prefix string) ([]entity.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	objects := make([]entity.StoredObject, 0)
	for obj := range s.minioClient.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    true,
		WithMetadata: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, entity.StoredObject{
			Ref:         obj.Key,
			Key:         obj.Key,
			Location:    s.objectURL(obj.Key),
			Size:        obj.Size,
			ContentType: obj.ContentType,
			UploadedAt:  obj.LastModified,
		})
	}

	return objects, nil
}
