package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/domain/model"
	"snapshare/internal/presentation"
	"snapshare/pkg/logger"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /api/photos/:id/file requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	photo, data, status, err := h.getter.ReadPhoto(c.Request().Context(), id)
	if err != nil {
		if status == http.StatusNotFound {
			return jsonError(c, http.StatusNotFound, msgNotFound)
		}

		return jsonError(c, http.StatusInternalServerError, msgServeFailed)
	}

	// a payload that disagrees with the record is treated as a broken transfer
	if int64(len(data)) != photo.Size {
		logger.Error("stored size differs from payload length", "id", id,
			"size", photo.Size, "length", len(data))

		return jsonError(c, http.StatusInternalServerError, msgServeFailed)
	}

	setPhotoHeaders(c, photo)

	return c.Blob(http.StatusOK, photo.MimeType, data)
}

func setPhotoHeaders(c echo.Context, photo *model.Photo) {
	header := c.Response().Header()
	header.Set(presentation.TypeKey, photo.MimeType)
	header.Set(echo.HeaderContentLength, strconv.FormatInt(photo.Size, 10))
	header.Set(presentation.CacheControlKey, presentation.CacheControlLong)
	header.Set(presentation.DispositionKey, `inline; filename="`+quoteEscaper.Replace(photo.OriginalName)+`"`)
}
