package usecase

import "errors"

var (
	ErrUploadClosed    = errors.New("upload period has ended")
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrStoreFailed     = errors.New("failed to store photo payload")
	ErrRecordFailed    = errors.New("failed to record photo metadata")
	ErrListFailed      = errors.New("failed to retrieve photos")
	ErrReadFailed      = errors.New("failed to read photo payload")
	ErrDeleteFailed    = errors.New("failed to mark photo deleted")
	ErrInventoryFailed = errors.New("failed to list stored objects")
)
