package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dkurbatovs/pulse/internal/client/cli"
	"github.com/dkurbatovs/pulse/internal/client/config"
	"github.com/dkurbatovs/pulse/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	// Diagnostics go to stderr so they never interleave with the feed
	// rendered on stdout.
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
