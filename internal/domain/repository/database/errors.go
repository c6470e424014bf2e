package database

import "errors"

// ErrNotFound is returned when no visible photo matches the id.
var ErrNotFound = errors.New("photo not found")
