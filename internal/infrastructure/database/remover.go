package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	dbRepository "snapshare/internal/domain/repository/database"
	"snapshare/pkg/logger"
)

type PhotoRemover struct {
	db *Database
}

func NewPhotoRemover(db *Database) *PhotoRemover {
	return &PhotoRemover{db: db}
}

// SoftDelete flags a visible photo as deleted. Records are never purged.
func (r *PhotoRemover) SoftDelete(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dbRepository.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.db.Collection().UpdateOne(ctx,
		bson.M{"_id": oid, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": at}},
	)
	if err != nil {
		logger.Error("failed to soft delete photo", "id", id, "err", err)

		return err
	}
	if res.MatchedCount == 0 {
		return dbRepository.ErrNotFound
	}

	return nil
}
