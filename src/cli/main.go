package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/vibecode/reloadnotice/src/cli/cmd"
	"github.com/vibecode/reloadnotice/src/version"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

// logFailure reports on stderr; stdout is reserved for the notice.
func logFailure(err error) {
	logger, lerr := zap.NewProduction()
	if lerr != nil {
		return
	}
	defer func() { _ = logger.Sync() }()
	logger.Error("reloadnotice failed", zap.String("build", version.String()), zap.Error(err))
}
