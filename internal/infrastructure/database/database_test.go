package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"snapshare/internal/domain/model"
	dbRepository "snapshare/internal/domain/repository/database"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) *Database {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	db, err := Connect(Config{
		URI:               fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, net.JoinHostPort(host, port.Port())),
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func newPhoto(session, name string, at time.Time) *model.Photo {
	return &model.Photo{
		BinaryRef:    session + "/" + name,
		Filename:     session + "/" + name,
		OriginalName: name,
		MimeType:     "image/jpeg",
		Size:         1200,
		SessionID:    session,
		UploadedAt:   at,
		Tags:         []string{},
	}
}

func TestPhotoLifecycle(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	writer := NewPhotoWriter(db)
	retriever := NewPhotoRetriever(db)
	lister := NewPhotoLister(db)
	remover := NewPhotoRemover(db)
	updater := NewPhotoUpdater(db)

	now := time.Now().UTC().Truncate(time.Millisecond)

	oldest := newPhoto("abc123", "a.jpg", now.Add(-2*time.Hour))
	newest := newPhoto("abc123", "b.jpg", now)
	other := newPhoto("zzz999", "c.jpg", now.Add(-1*time.Hour))

	// inserted out of time order on purpose
	for _, p := range []*model.Photo{newest, oldest, other} {
		id, err := writer.Write(ctx, p)
		require.NoError(t, err)
		require.False(t, id.IsZero())
		assert.Equal(t, id, p.ID)
	}

	t.Run("list all sorted newest first", func(t *testing.T) {
		photos, err := lister.ListActive(ctx, "")
		require.NoError(t, err)
		require.Len(t, photos, 3)
		assert.Equal(t, newest.ID, photos[0].ID)
		assert.Equal(t, other.ID, photos[1].ID)
		assert.Equal(t, oldest.ID, photos[2].ID)
	})

	t.Run("list by session", func(t *testing.T) {
		photos, err := lister.ListActive(ctx, "zzz999")
		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, "c.jpg", photos[0].OriginalName)
	})

	t.Run("retrieve", func(t *testing.T) {
		got, err := retriever.GetByID(ctx, newest.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, newest.BinaryRef, got.BinaryRef)
		assert.Equal(t, int64(1200), got.Size)
		assert.NotNil(t, got.Tags)
	})

	t.Run("retrieve malformed id", func(t *testing.T) {
		_, err := retriever.GetByID(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, dbRepository.ErrNotFound)
	})

	t.Run("set dimensions", func(t *testing.T) {
		require.NoError(t, updater.SetDimensions(ctx, other.ID.Hex(), 640, 480))

		got, err := retriever.GetByID(ctx, other.ID.Hex())
		require.NoError(t, err)
		require.True(t, got.Metadata.HasDimensions())
		assert.Equal(t, 640, *got.Metadata.Width)
		assert.Equal(t, 480, *got.Metadata.Height)
	})

	t.Run("soft delete hides record", func(t *testing.T) {
		require.NoError(t, remover.SoftDelete(ctx, oldest.ID.Hex(), now))

		_, err := retriever.GetByID(ctx, oldest.ID.Hex())
		assert.ErrorIs(t, err, dbRepository.ErrNotFound)

		photos, err := lister.ListActive(ctx, "abc123")
		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, newest.ID, photos[0].ID)

		var raw model.Photo
		err = db.Collection().FindOne(ctx, bson.M{"_id": oldest.ID}).Decode(&raw)
		require.NoError(t, err, "record must still exist")
		assert.True(t, raw.IsDeleted)
		require.NotNil(t, raw.DeletedAt)
	})

	t.Run("second soft delete is not found", func(t *testing.T) {
		err := remover.SoftDelete(ctx, oldest.ID.Hex(), now)
		assert.ErrorIs(t, err, dbRepository.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := remover.SoftDelete(ctx, primitive.NewObjectID().Hex(), now)
		assert.ErrorIs(t, err, dbRepository.ErrNotFound)
	})
}

func TestWriteValidation(t *testing.T) {
	db := setupMongo(t)
	writer := NewPhotoWriter(db)

	photo := newPhoto("abc123", "a.jpg", time.Now())
	photo.BinaryRef = ""

	_, err := writer.Write(context.Background(), photo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Document failed validation")
}
