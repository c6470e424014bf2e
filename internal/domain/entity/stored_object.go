package entity

import "time"

// StoredObject describes one payload held by a storage backend.
type StoredObject struct {
	Ref         string
	Key         string
	Location    string
	Size        int64
	ContentType string
	UploadedAt  time.Time
}
