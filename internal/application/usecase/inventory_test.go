package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snapshare/internal/domain/entity"
)

func TestListObjects(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC)
	store := &MockStore{}
	store.On("List", mock.Anything, "abc123/").Return([]entity.StoredObject{
		{Key: "abc123/a.jpg", Size: 1200, ContentType: "image/jpeg", UploadedAt: at},
	}, nil)
	store.On("List", mock.Anything, "broken/").Return(nil, errors.New("bucket gone"))

	inv := NewInventory(store)

	list, status, err := inv.ListObjects(context.Background(), "abc123/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, list.Objects, 1)
	assert.Equal(t, "abc123/a.jpg", list.Objects[0].Key)
	assert.Equal(t, "2025-08-29T10:00:00.000Z", list.Objects[0].UploadedAt)

	_, status, err = inv.ListObjects(context.Background(), "broken/")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.ErrorIs(t, err, ErrInventoryFailed)
}
