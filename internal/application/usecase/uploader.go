package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"snapshare/internal/domain/entity"
	"snapshare/internal/domain/model"
	"snapshare/internal/domain/repository/broker"
	"snapshare/internal/domain/repository/database"
	"snapshare/internal/domain/repository/storage"
	"snapshare/pkg/logger"
	"snapshare/pkg/utils"
)

const (
	sniffLen = 3072
	// isoMillis matches the ISO-8601 form browsers produce with toISOString.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

var keyTimestampReplacer = strings.NewReplacer(":", "-", ".", "-")

type Uploader struct {
	store          storage.BlobStore
	writer         database.Writer
	publisher      broker.Publisher
	cutoff         time.Time
	now            func() time.Time
	defaultAddress string
	directURLs     bool
}

// NewUploader creates the upload usecase. A zero cutoff never closes uploads.
func NewUploader(store storage.BlobStore, writer database.Writer, publisher broker.Publisher,
	cutoff time.Time, address string, directURLs bool,
) *Uploader {
	return &Uploader{
		store:          store,
		writer:         writer,
		publisher:      publisher,
		cutoff:         cutoff,
		now:            time.Now,
		defaultAddress: strings.TrimSuffix(address, "/"),
		directURLs:     directURLs,
	}
}

// WithClock replaces the time source, mainly for tests.
func (u *Uploader) WithClock(now func() time.Time) *Uploader {
	u.now = now

	return u
}

// Upload stores the payload, then inserts its metadata record. The two writes
// are not transactional: a failed insert leaves the payload behind.
func (u *Uploader) Upload(ctx context.Context, req entity.UploadRequest) (entity.UploadResult, error) {
	now := u.now()
	if !u.cutoff.IsZero() && !now.Before(u.cutoff) {
		return entity.UploadResult{Status: http.StatusForbidden}, ErrUploadClosed
	}

	body, mimeType, err := resolveMimeType(req.Body, req.MimeType)
	if err != nil {
		logger.Error("failed to read upload head", "err", err)

		return entity.UploadResult{Status: http.StatusInternalServerError}, ErrStoreFailed
	}

	name := req.OriginalName
	if name == "" {
		name = "photo" + utils.GetExtensionFromMimeType(mimeType)
	}
	key := buildObjectKey(req.SessionID, now, name)

	stored, err := u.store.Put(ctx, key, body, req.Size, mimeType)
	if err != nil {
		logger.Error("upload failed", "key", key, "err", err)

		return entity.UploadResult{Status: http.StatusInternalServerError}, ErrStoreFailed
	}

	photo := &model.Photo{
		BinaryRef:    stored.Ref,
		Location:     stored.Location,
		Filename:     key,
		OriginalName: name,
		MimeType:     mimeType,
		Size:         req.Size,
		SessionID:    req.SessionID,
		UploadedAt:   now.UTC(),
		UploadedBy:   req.ClientAddr,
		Metadata:     buildMetadata(req),
		Tags:         []string{},
		IsDeleted:    false,
	}
	if photo.Size < 0 {
		photo.Size = stored.Size
	}

	id, err := u.writer.Write(ctx, photo)
	if err != nil {
		logger.Error("couldn't add photo to database, payload left orphaned",
			"ref", stored.Ref, "err", err)

		return entity.UploadResult{Status: http.StatusInternalServerError}, ErrRecordFailed
	}

	if err := u.publisher.Publish(ctx, id.Hex()); err != nil {
		logger.Warn("failed to publish uploaded photo for processing", "id", id.Hex(), "err", err)
	}

	return entity.UploadResult{
		Photo:  photo,
		URL:    photoURL(u.defaultAddress, photo, u.directURLs),
		Status: http.StatusOK,
	}, nil
}

// buildObjectKey joins session id, a path-safe receipt timestamp and the
// client file name, e.g. "abc123/2025-08-29T10-04-05-123Z-img.jpg".
func buildObjectKey(sessionID string, at time.Time, name string) string {
	if sessionID == "" {
		sessionID = "unknown"
	}
	ts := keyTimestampReplacer.Replace(at.UTC().Format(isoMillis))

	return fmt.Sprintf("%s/%s-%s", sessionID, ts, name)
}

// resolveMimeType keeps the client type when present and sniffs the first
// bytes otherwise. The returned reader still yields the whole payload.
func resolveMimeType(body io.Reader, clientType string) (io.Reader, string, error) {
	if clientType != "" && clientType != "application/octet-stream" {
		return body, clientType, nil
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]

	return io.MultiReader(bytes.NewReader(head), body), mimetype.Detect(head).String(), nil
}

func buildMetadata(req entity.UploadRequest) *model.Metadata {
	if req.DeviceInfo == "" && req.Width == nil && req.Height == nil {
		return nil
	}

	return &model.Metadata{
		Width:      req.Width,
		Height:     req.Height,
		DeviceInfo: req.DeviceInfo,
	}
}

func photoURL(address string, photo *model.Photo, direct bool) string {
	if direct && photo.Location != "" {
		return photo.Location
	}

	return fmt.Sprintf("%s/api/photos/%s/file", address, photo.ID.Hex())
}
