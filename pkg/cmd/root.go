package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/config"
	"github.com/pseudomuto/dbcleaner/pkg/consts"
	"github.com/pseudomuto/dbcleaner/pkg/logging"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

const defaultEnvFile = ".env"

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config `optional:"true"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the dbcleaner CLI application to run once the fx app has
// started, then shuts the app down with the command's exit status.
func Run(p Params) {
	app := NewApp(p.Version, p.Config, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// NewApp builds the root command.
//
// Global Flags:
//   - --config, -c: configuration file (default: dbcleaner.yaml, $DBCLEANER_CONFIG)
//   - --env-file: dotenv files loaded before running (default: .env when present)
//   - --log-level, --log-format: override the logging section of the config
//
// Example usage:
//
//	dbcleaner --env-file .env.test clean --yes
//	dbcleaner -c ci/dbcleaner.yaml tables
func NewApp(version *Version, cfg *config.Config, commands []*cli.Command) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", version.Timestamp)
	}

	return &cli.Command{
		Name:  "dbcleaner",
		Usage: "Empty every table of a test database",
		Description: `dbcleaner resets a MySQL, PostgreSQL or SQLite database between test runs
by truncating or deleting the rows of every table, while leaving the schema
and any ignored tables in place.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the dbcleaner config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load; existing environment variables win",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text or json",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := loadEnvFiles(cmd.StringSlice("env-file")); err != nil {
				return ctx, err
			}

			level, format := consts.DefaultLogLevel, consts.DefaultLogFormat
			if cfg != nil {
				level, format = cfg.Logging.Level, cfg.Logging.Format
			}

			if cmd.IsSet("log-level") {
				level = cmd.String("log-level")
			}

			if cmd.IsSet("log-format") {
				format = cmd.String("log-format")
			}

			w := cmd.ErrWriter
			if w == nil {
				w = os.Stderr
			}

			logging.Setup(w, level, format)
			return ctx, nil
		},
		Commands: commands,
	}
}

// loadEnvFiles loads the given dotenv files. With none given, .env is loaded
// if it exists.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil
		}

		files = []string{defaultEnvFile}
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "failed to load env files")
	}

	return nil
}
