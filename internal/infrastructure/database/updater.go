package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	dbRepository "snapshare/internal/domain/repository/database"
)

type PhotoUpdater struct {
	db *Database
}

func NewPhotoUpdater(db *Database) *PhotoUpdater {
	return &PhotoUpdater{db: db}
}

func (u *PhotoUpdater) SetDimensions(ctx context.Context, id string, width, height int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dbRepository.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	res, err := u.db.Collection().UpdateOne(ctx,
		bson.M{"_id": oid, "isDeleted": false},
		bson.M{"$set": bson.M{"metadata.width": width, "metadata.height": height}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return dbRepository.ErrNotFound
	}

	return nil
}
