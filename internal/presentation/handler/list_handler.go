package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /api/list requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	list, status, err := h.lister.ListPhotos(c.Request().Context(), c.QueryParam(presentation.SessionIDField))
	if err != nil {
		return jsonError(c, status, msgListFailed)
	}

	return c.JSON(http.StatusOK, list)
}
