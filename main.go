package main

import (
	"log/slog"
	"os"

	"github.com/magpietutor/magpie/cmd"
	"github.com/magpietutor/magpie/tutor/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, nil)))

	if err := cmd.Execute(version, commit); err != nil {
		logger.LogError("Magpie exited with an error", err)
		os.Exit(1)
	}
}
