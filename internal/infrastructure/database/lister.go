package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"snapshare/internal/domain/model"
	"snapshare/pkg/logger"
)

type PhotoLister struct {
	db *Database
}

func NewPhotoLister(db *Database) *PhotoLister {
	return &PhotoLister{db: db}
}

func (l *PhotoLister) ListActive(ctx context.Context, sessionID string) ([]model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	filter := bson.M{"isDeleted": false}
	if sessionID != "" {
		filter["sessionId"] = sessionID
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := l.db.Collection().Find(ctx, filter, opts)
	if err != nil {
		logger.Error("failed to list photos", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	photos := make([]model.Photo, 0)
	if err = cursor.All(ctx, &photos); err != nil {
		logger.Error("failed to decode photos", "err", err)

		return nil, err
	}

	return photos, nil
}
