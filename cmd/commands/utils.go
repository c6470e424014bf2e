package commands

import (
	"os"

	"snapshare/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("snapshare error", "err", err.Error())
	logger.Sync()
	os.Exit(1)
}
