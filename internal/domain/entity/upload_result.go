package entity

import "snapshare/internal/domain/model"

type UploadResult struct {
	Photo  *model.Photo
	URL    string
	Status int
}
