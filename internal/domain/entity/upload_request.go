package entity

import "io"

// UploadRequest carries one photo as received from a client.
type UploadRequest struct {
	Body         io.Reader
	Size         int64
	OriginalName string
	MimeType     string
	SessionID    string
	ClientAddr   string
	DeviceInfo   string
	Width        *int
	Height       *int
}
