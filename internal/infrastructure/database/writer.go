package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"snapshare/internal/domain/model"
	"snapshare/pkg/logger"
)

type PhotoWriter struct {
	db *Database
}

func NewPhotoWriter(db *Database) *PhotoWriter {
	return &PhotoWriter{db: db}
}

// Write inserts a new record and returns the id assigned by the server.
func (w *PhotoWriter) Write(ctx context.Context, photo *model.Photo) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	res, err := w.db.Collection().InsertOne(ctx, photo)
	if err != nil {
		logger.Error("failed to insert photo", "filename", photo.Filename, "err", err)

		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	photo.ID = id

	return id, nil
}
