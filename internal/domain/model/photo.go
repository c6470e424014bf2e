package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Photo struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BinaryRef    string             `bson:"binaryRef"`
	Location     string             `bson:"location,omitempty"` // public object URL, if the backend has one
	Filename     string             `bson:"filename"`
	OriginalName string             `bson:"originalName"`
	MimeType     string             `bson:"mimeType"`
	Size         int64              `bson:"size"`
	SessionID    string             `bson:"sessionId"`
	UploadedAt   time.Time          `bson:"uploadedAt"`
	UploadedBy   string             `bson:"uploadedBy,omitempty"`
	Metadata     *Metadata          `bson:"metadata,omitempty"`
	Tags         []string           `bson:"tags"`
	IsDeleted    bool               `bson:"isDeleted"`
	DeletedAt    *time.Time         `bson:"deletedAt,omitempty"`
}

type Metadata struct {
	Width      *int         `bson:"width,omitempty" json:"width,omitempty"`
	Height     *int         `bson:"height,omitempty" json:"height,omitempty"`
	DeviceInfo string       `bson:"deviceInfo,omitempty" json:"deviceInfo,omitempty"`
	Location   *GeoLocation `bson:"location,omitempty" json:"location,omitempty"`
}

type GeoLocation struct {
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// HasDimensions reports whether both width and height are known.
func (m *Metadata) HasDimensions() bool {
	return m != nil && m.Width != nil && m.Height != nil
}
