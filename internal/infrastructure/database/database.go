package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"snapshare/pkg/logger"
)

const PhotoCollection = "photos"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongodb", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initPhotoCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Collection returns the photos collection handle.
func (db *Database) Collection() *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(PhotoCollection)
}

func initPhotoCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": PhotoCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{
				"binaryRef", "filename", "originalName", "mimeType",
				"size", "sessionId", "uploadedAt", "isDeleted",
			},
			"properties": bson.M{
				"binaryRef":    bson.M{"bsonType": "string", "minLength": 1},
				"location":     bson.M{"bsonType": "string"},
				"filename":     bson.M{"bsonType": "string"},
				"originalName": bson.M{"bsonType": "string"},
				"mimeType":     bson.M{"bsonType": "string"},
				"size":         bson.M{"bsonType": []string{"long", "int"}},
				"sessionId":    bson.M{"bsonType": "string"},
				"uploadedAt":   bson.M{"bsonType": "date"},
				"uploadedBy":   bson.M{"bsonType": "string"},
				"metadata": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"width":      bson.M{"bsonType": []string{"int", "long"}},
						"height":     bson.M{"bsonType": []string{"int", "long"}},
						"deviceInfo": bson.M{"bsonType": "string"},
					},
				},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"isDeleted": bson.M{"bsonType": "bool"},
				"deletedAt": bson.M{"bsonType": []string{"date", "null"}},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, PhotoCollection, collOpts)
	if err != nil {
		return err
	}

	_, err = db.Collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "uploadedAt", Value: -1}}},
		{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "uploadedAt", Value: -1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
