package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/config"
	"github.com/pseudomuto/dbcleaner/pkg/consts"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// connectionFlags are shared by every command that talks to a database.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "database connection string (default: $" + consts.DatabaseURLEnvVar + ")",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:  "dialect",
			Usage: "database dialect: mysql, postgresql or sqlite3 (inferred from --url when omitted)",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.IntFlag{
			Name:  "max-open-conns",
			Usage: "maximum number of open connections",
		},
	}
}

// resolveConfig returns the configuration a command runs with: the file named
// by --config when given, otherwise the file loaded at startup, otherwise the
// defaults. Connection flags are applied on top. The startup config is never
// modified.
func resolveConfig(cmd *cli.Command, loaded *config.Config) (*config.Config, error) {
	var cfg config.Config

	switch {
	case cmd.IsSet("config"):
		fromFile, err := config.LoadConfigFile(cmd.String("config"))
		if err != nil {
			return nil, err
		}
		cfg = *fromFile
	case loaded != nil:
		cfg = *loaded
	default:
		cfg = *config.Default()
	}

	if cmd.IsSet("url") {
		cfg.Database.URL = cmd.String("url")
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv(consts.DatabaseURLEnvVar)
	}

	if cmd.IsSet("dialect") {
		cfg.Database.Dialect = cmd.String("dialect")
	}

	if cfg.Database.Dialect == "" {
		cfg.Database.Dialect = inferDialect(os.ExpandEnv(cfg.Database.URL)).String()
	}

	if cmd.IsSet("max-open-conns") {
		cfg.Database.MaxOpenConns = int(cmd.Int("max-open-conns"))
	}

	return &cfg, nil
}

// openClient validates the database section and connects.
func openClient(ctx context.Context, cfg *config.Config) (*database.Client, error) {
	opts := cfg.DatabaseOptions()
	if opts.URL == "" {
		return nil, errors.Wrapf(database.ErrMissingURL, "pass --url, set $%s or database.url", consts.DatabaseURLEnvVar)
	}

	if !opts.Dialect.Supported() {
		return nil, errors.Wrapf(dialect.ErrUnsupported, "%q (pass --dialect or database.dialect)", cfg.Database.Dialect)
	}

	return database.Open(ctx, opts)
}

// inferDialect guesses the dialect from the shape of a connection string.
// Unrecognized strings yield an unsupported Kind with an empty name.
func inferDialect(url string) dialect.Kind {
	lower := strings.ToLower(url)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return dialect.PostgreSQL
	case strings.HasPrefix(lower, "mysql://"), strings.Contains(lower, "@tcp("), strings.Contains(lower, "@unix("):
		return dialect.MySQL
	case strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"),
		strings.HasSuffix(lower, ".sqlite3"):
		return dialect.SQLite3
	default:
		return dialect.Unsupported("")
	}
}
