package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/presentation"
)

type InventoryHandler struct {
	inventory abstraction.Inventory
}

func NewInventoryHandler(inventory abstraction.Inventory) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
	}
}

// HandleInventory handles GET /api/admin/blobs requests.
func (h *InventoryHandler) HandleInventory(c echo.Context) error {
	list, status, err := h.inventory.ListObjects(c.Request().Context(), c.QueryParam(presentation.PrefixQuery))
	if err != nil {
		return jsonError(c, status, msgInventoryFail)
	}

	return c.JSON(http.StatusOK, list)
}

func HandleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
