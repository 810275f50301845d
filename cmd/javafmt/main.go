package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pseudomuto/javafmt/pkg/cmd"
	"github.com/pseudomuto/javafmt/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
	slog.SetDefault(slog.New(logger))

	fx.New(
		fx.NopLogger,
		fx.Supply(
			os.Args,
			logger,
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		fx.Provide(context.Background),
		config.Module,
		cmd.Module,
	).Run()
}
