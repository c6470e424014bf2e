package utils

import "strings"

// mimeTypeToExtension maps the media types phones and cameras produce to
// their usual file extension.
var mimeTypeToExtension = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/pjpeg":     ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"image/heif":      ".heif",
	"image/avif":      ".avif",
	"image/bmp":       ".bmp",
	"image/tiff":      ".tif",
	"image/svg+xml":   ".svg",
	"image/x-icon":    ".ico",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"video/3gpp":      ".3gp",
	"application/pdf": ".pdf",
	"application/zip": ".zip",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove parameters if present (e.g., "image/jpeg; q=0.9")
	cleaned := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if ext, ok := mimeTypeToExtension[cleaned]; ok {
		return ext
	}

	return ".bin"
}

// IsImage reports whether mimeType names an image media type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}
