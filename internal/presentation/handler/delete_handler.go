package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/presentation"
	"snapshare/pkg/logger"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

type deleteResponse struct {
	Success bool `json:"success"`
}

// HandleDelete handles DELETE /api/photos/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	status, err := h.deleter.DeletePhoto(c.Request().Context(), id)
	if err != nil {
		if status == http.StatusNotFound {
			return jsonError(c, http.StatusNotFound, msgNotFound)
		}

		return jsonError(c, http.StatusInternalServerError, msgDeleteFailed)
	}

	admin, _ := c.Get(presentation.AdminUserKey).(string)
	logger.Info("photo deleted", "id", id, "by", admin)

	return c.JSON(http.StatusOK, deleteResponse{Success: true})
}
