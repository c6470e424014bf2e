package usecase

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/model"
	"snapshare/internal/domain/repository/database"
	"snapshare/pkg/logger"
)

// Lister implements the Lister abstraction for the public gallery feed.
type Lister struct {
	lister         database.Lister
	defaultAddress string
	directURLs     bool
}

// NewLister creates a new Lister usecase.
func NewLister(lister database.Lister, address string, directURLs bool) *Lister {
	return &Lister{
		lister:         lister,
		defaultAddress: strings.TrimSuffix(address, "/"),
		directURLs:     directURLs,
	}
}

// ListPhotos returns visible photos, newest first, optionally for one session.
func (l *Lister) ListPhotos(ctx context.Context, sessionID string) (dto.PhotoList, int, error) {
	photos, err := l.lister.ListActive(ctx, sessionID)
	if err != nil {
		logger.Error("error listing files", "err", err)

		return dto.PhotoList{}, http.StatusInternalServerError, ErrListFailed
	}

	slices.SortStableFunc(photos, func(a, b model.Photo) int {
		return b.UploadedAt.Compare(a.UploadedAt)
	})

	files := make([]dto.PhotoDescriptor, 0, len(photos))
	for i := range photos {
		p := &photos[i]
		if p.IsDeleted {
			continue
		}

		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}

		files = append(files, dto.PhotoDescriptor{
			ID:           p.ID.Hex(),
			Filename:     p.Filename,
			OriginalName: p.OriginalName,
			MimeType:     p.MimeType,
			Size:         p.Size,
			URL:          photoURL(l.defaultAddress, p, l.directURLs),
			SessionID:    p.SessionID,
			UploadedAt:   p.UploadedAt.UTC().Format(isoMillis),
			Metadata:     p.Metadata,
			Tags:         tags,
		})
	}

	return dto.PhotoList{Files: files}, http.StatusOK, nil
}
