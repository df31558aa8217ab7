package main

import (
	"os"

	"honnef.co/go/spline/internal/cli"
	"honnef.co/go/spline/internal/logging"
)

// main is the entry point for the spline CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
