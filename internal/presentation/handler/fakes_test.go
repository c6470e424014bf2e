package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"snapshare/internal/domain/entity"
	"snapshare/internal/domain/model"
	"snapshare/internal/domain/repository/database"
)

var errNoSuchKey = errors.New("no such key")

type memStore struct {
	mu      sync.Mutex
	objects map[string]entity.StoredObject
	data    map[string][]byte
	failPut bool
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]entity.StoredObject{}, data: map[string][]byte{}}
}

func (s *memStore) Put(_ context.Context, key string, body io.Reader, _ int64,
	contentType string,
) (entity.StoredObject, error) {
	if s.failPut {
		return entity.StoredObject{}, errors.New("backend unavailable")
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return entity.StoredObject{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	obj := entity.StoredObject{
		Ref: key, Key: key, Size: int64(len(b)),
		ContentType: contentType, UploadedAt: time.Now(),
	}
	s.objects[key] = obj
	s.data[key] = b

	return obj, nil
}

func (s *memStore) Get(_ context.Context, ref string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.data[ref]
	if !ok {
		return nil, errNoSuchKey
	}

	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memStore) List(_ context.Context, prefix string) ([]entity.StoredObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entity.StoredObject{}
	for k, o := range s.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, o)
		}
	}

	return out, nil
}

func (s *memStore) Delete(_ context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, ref)
	delete(s.data, ref)

	return nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}

type memRepo struct {
	mu     sync.Mutex
	photos map[string]model.Photo
}

func newMemRepo() *memRepo {
	return &memRepo{photos: map[string]model.Photo{}}
}

func (r *memRepo) Write(_ context.Context, photo *model.Photo) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	photo.ID = primitive.NewObjectID()
	r.photos[photo.ID.Hex()] = *photo

	return photo.ID, nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*model.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.photos[id]
	if !ok || p.IsDeleted {
		return nil, database.ErrNotFound
	}

	return &p, nil
}

func (r *memRepo) ListActive(_ context.Context, sessionID string) ([]model.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Photo{}
	for _, p := range r.photos {
		if p.IsDeleted || (sessionID != "" && p.SessionID != sessionID) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *memRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.photos[id]
	if !ok || p.IsDeleted {
		return database.ErrNotFound
	}
	p.IsDeleted = true
	p.DeletedAt = &at
	r.photos[id] = p

	return nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.photos)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string) error { return nil }
