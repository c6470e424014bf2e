package database

import (
	"context"
	"time"
)

type Remover interface {
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
