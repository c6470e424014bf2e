package dto

import "snapshare/internal/domain/model"

// PhotoDescriptor is the public view of a photo returned by the list endpoint.
type PhotoDescriptor struct {
	ID           string          `json:"id"`
	Filename     string          `json:"filename"`
	OriginalName string          `json:"originalName"`
	MimeType     string          `json:"mimeType"`
	Size         int64           `json:"size"`
	URL          string          `json:"url"`
	SessionID    string          `json:"sessionId"`
	UploadedAt   string          `json:"uploadedAt"`
	Metadata     *model.Metadata `json:"metadata,omitempty"`
	Tags         []string        `json:"tags"`
}

type PhotoList struct {
	Files []PhotoDescriptor `json:"files"`
}

// UploadDescriptor is returned after a successful upload.
type UploadDescriptor struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

type ObjectDescriptor struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
	UploadedAt  string `json:"uploadedAt"`
}

type ObjectList struct {
	Objects []ObjectDescriptor `json:"objects"`
}
