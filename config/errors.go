package config

import "fmt"

// Error is returned for any problem loading or validating the config.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
