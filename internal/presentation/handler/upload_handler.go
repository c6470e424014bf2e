package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/entity"
	"snapshare/internal/presentation"
	"snapshare/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload handles POST /api/upload multipart requests.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	fh, err := c.FormFile(presentation.FileField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			logger.Warn("malformed upload form", "err", err)
		}

		return jsonError(c, http.StatusBadRequest, msgNoFile)
	}

	file, err := fh.Open()
	if err != nil {
		logger.Error("couldn't open uploaded part", "err", err)

		return jsonError(c, http.StatusInternalServerError, msgUploadFailed)
	}
	defer file.Close()

	req := c.Request()
	result, err := h.uploader.Upload(req.Context(), entity.UploadRequest{
		Body:         file,
		Size:         fh.Size,
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get(presentation.TypeKey),
		SessionID:    c.FormValue(presentation.SessionIDField),
		ClientAddr:   c.RealIP(),
		DeviceInfo:   req.UserAgent(),
		Width:        positiveHeader(req, presentation.ImageWidthKey),
		Height:       positiveHeader(req, presentation.ImageHeightKey),
	})
	if err != nil {
		if result.Status == http.StatusForbidden {
			return jsonError(c, http.StatusForbidden, msgUploadClosed)
		}

		return jsonError(c, http.StatusInternalServerError, msgUploadFailed)
	}

	return c.JSON(http.StatusOK, dto.UploadDescriptor{
		ID:        result.Photo.ID.Hex(),
		URL:       result.URL,
		Filename:  result.Photo.OriginalName,
		Size:      result.Photo.Size,
		Type:      result.Photo.MimeType,
		SessionID: result.Photo.SessionID,
	})
}

// positiveHeader parses an optional client-declared pixel dimension.
func positiveHeader(req *http.Request, key string) *int {
	v, err := strconv.Atoi(req.Header.Get(key))
	if err != nil || v <= 0 {
		return nil
	}

	return &v
}
