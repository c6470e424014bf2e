package usecase

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"snapshare/internal/domain/entity"
	"snapshare/internal/domain/model"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, key string, body io.Reader, size int64,
	contentType string,
) (entity.StoredObject, error) {
	args := m.Called(ctx, key, body, size, contentType)

	return args.Get(0).(entity.StoredObject), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	args := m.Called(ctx, ref)
	rc, _ := args.Get(0).(io.ReadCloser)

	return rc, args.Error(1)
}

func (m *MockStore) List(ctx context.Context, prefix string) ([]entity.StoredObject, error) {
	args := m.Called(ctx, prefix)
	objs, _ := args.Get(0).([]entity.StoredObject)

	return objs, args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Write(ctx context.Context, photo *model.Photo) (primitive.ObjectID, error) {
	args := m.Called(ctx, photo)
	id := args.Get(0).(primitive.ObjectID)
	if args.Error(1) == nil {
		photo.ID = id
	}

	return id, args.Error(1)
}

type MockRetriever struct {
	mock.Mock
}

func (m *MockRetriever) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Photo)

	return p, args.Error(1)
}

type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListActive(ctx context.Context, sessionID string) ([]model.Photo, error) {
	args := m.Called(ctx, sessionID)
	p, _ := args.Get(0).([]model.Photo)

	return p, args.Error(1)
}

type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}
