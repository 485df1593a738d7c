package main

import (
	"log/slog"
	"os"

	"github.com/slacklens/slacklens/cmd/slacklens/commands"
)

func main() {
	// Logs go to stderr; stdout is reserved for report and metrics output.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := commands.Execute(); err != nil {
		slog.Error("slacklens failed", "err", err)
		os.Exit(1)
	}
}
