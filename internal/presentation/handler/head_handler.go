package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/presentation"
)

type HeadHandler struct {
	getter abstraction.Getter
}

func NewHeadHandler(getter abstraction.Getter) *HeadHandler {
	return &HeadHandler{
		getter: getter,
	}
}

// HandleHead handles HEAD /api/photos/:id/file requests without touching the payload.
func (h *HeadHandler) HandleHead(c echo.Context) error {
	photo, status, err := h.getter.GetPhoto(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return c.NoContent(status)
	}

	setPhotoHeaders(c, photo)

	return c.NoContent(http.StatusOK)
}
