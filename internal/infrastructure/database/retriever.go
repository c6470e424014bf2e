package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"snapshare/internal/domain/model"
	dbRepository "snapshare/internal/domain/repository/database"
	"snapshare/pkg/logger"
)

type PhotoRetriever struct {
	db *Database
}

func NewPhotoRetriever(db *Database) *PhotoRetriever {
	return &PhotoRetriever{db: db}
}

func (r *PhotoRetriever) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dbRepository.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var photo model.Photo
	err = r.db.Collection().FindOne(ctx, bson.M{"_id": oid, "isDeleted": false}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dbRepository.ErrNotFound
		}
		logger.Error("failed to retrieve photo by id", "id", id, "err", err)

		return nil, err
	}

	return &photo, nil
}
