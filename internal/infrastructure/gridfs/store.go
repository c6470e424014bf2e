package gridfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"snapshare/internal/domain/entity"
	"snapshare/pkg/logger"
)

var ErrInvalidRef = errors.New("invalid gridfs file id")

// Store keeps photo payloads in a GridFS bucket next to the metadata. The
// generated file id, in hex, is the binary ref.
type Store struct {
	db  *mongo.Database
	cfg Config
}

func NewStore(db *mongo.Database, cfg Config) *Store {
	if cfg.BucketName == "" {
		cfg.BucketName = "photos"
	}

	return &Store{db: db, cfg: cfg}
}

// bucket returns a fresh handle per call; deadlines are per-bucket state and
// handles are shared across requests otherwise.
func (s *Store) bucket() (*gridfs.Bucket, error) {
	return gridfs.NewBucket(s.db, options.GridFSBucket().SetName(s.cfg.BucketName))
}

func (s *Store) deadline() time.Time {
	return time.Now().Add(time.Duration(s.cfg.Timeout) * time.Millisecond)
}

func (s *Store) Put(_ context.Context, key string, body io.Reader, _ int64,
	contentType string,
) (entity.StoredObject, error) {
	b, err := s.bucket()
	if err != nil {
		return entity.StoredObject{}, err
	}
	if err := b.SetWriteDeadline(s.deadline()); err != nil {
		return entity.StoredObject{}, err
	}

	counter := &countingReader{r: body}
	uploadOpts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})

	id, err := b.UploadFromStream(key, counter, uploadOpts)
	if err != nil {
		logger.Error("failed to upload to gridfs", "filename", key, "err", err)

		return entity.StoredObject{}, fmt.Errorf("gridfs upload: %w", err)
	}

	return entity.StoredObject{
		Ref:         id.Hex(),
		Key:         key,
		Size:        counter.n,
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func (s *Store) Get(_ context.Context, ref string) (io.ReadCloser, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, ErrInvalidRef
	}

	b, err := s.bucket()
	if err != nil {
		return nil, err
	}
	if err := b.SetReadDeadline(s.deadline()); err != nil {
		return nil, err
	}

	stream, err := b.OpenDownloadStream(id)
	if err != nil {
		return nil, fmt.Errorf("gridfs open: %w", err)
	}

	return stream, nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]entity.StoredObject, error) {
	ctx, cancel := context.WithDeadline(ctx, s.deadline())
	defer cancel()

	b, err := s.bucket()
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if prefix != "" {
		filter["filename"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}
	}

	cursor, err := b.FindContext(ctx, filter, options.GridFSFind().SetSort(bson.D{{Key: "uploadDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []gridfs.File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}

	objects := make([]entity.StoredObject, 0, len(files))
	for _, f := range files {
		obj := entity.StoredObject{
			Key:        f.Name,
			Size:       f.Length,
			UploadedAt: f.UploadDate,
		}
		if id, ok := f.ID.(primitive.ObjectID); ok {
			obj.Ref = id.Hex()
		}
		if len(f.Metadata) > 0 {
			if ct, ok := f.Metadata.Lookup("contentType").StringValueOK(); ok {
				obj.ContentType = ct
			}
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return ErrInvalidRef
	}

	ctx, cancel := context.WithDeadline(ctx, s.deadline())
	defer cancel()

	b, err := s.bucket()
	if err != nil {
		return err
	}

	if err := b.DeleteContext(ctx, id); err != nil {
		logger.Error("failed to remove gridfs file", "id", ref, "err", err)

		return err
	}

	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
