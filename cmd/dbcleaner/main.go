package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pseudomuto/dbcleaner/pkg/cmd"
	"github.com/pseudomuto/dbcleaner/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return ctx }),
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		config.Module,
		cmd.Module,
	)

	if err := app.Err(); err != nil {
		slog.Error("Failed to start dbcleaner", "err", err)
		os.Exit(1)
	}

	app.Run()
}
