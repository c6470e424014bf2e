package database

import "context"

type Updater interface {
	SetDimensions(ctx context.Context, id string, width, height int) error
}
