package handler

import "github.com/labstack/echo/v4"

const (
	msgNoFile        = "No file provided"
	msgUploadClosed  = "Upload period has ended"
	msgUploadFailed  = "Upload failed"
	msgListFailed    = "Failed to list files"
	msgNotFound      = "Photo not found"
	msgServeFailed   = "Failed to serve photo"
	msgDeleteFailed  = "Failed to delete photo"
	msgInventoryFail = "Failed to list stored objects"
)

type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Error: msg})
}
