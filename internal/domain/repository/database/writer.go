package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"snapshare/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, photo *model.Photo) (primitive.ObjectID, error)
}
