package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/cleaner"
	"github.com/pseudomuto/dbcleaner/pkg/config"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/urfave/cli/v3"
)

// ErrNotConfirmed is returned when clean runs without --yes or --dry-run.
var ErrNotConfirmed = errors.New("refusing to clean without --yes")

// clean creates the clean command, which empties every table of the
// configured database.
//
// Flags override the clean section of the config file. Without --yes the
// command refuses to run, unless --dry-run is given, in which case tables are
// still discovered from the live database but the statements are only
// printed.
//
// Examples:
//
//	# Preview the statements
//	dbcleaner clean --url postgres://localhost/app_test --dry-run
//
//	# Delete rows instead of truncating, keeping migrations
//	dbcleaner clean --mode delete --ignore schema_migrations --yes
//
//	# Clean children before parents
//	dbcleaner clean --order comments --order posts --yes
func clean(cfg *config.Config) *cli.Command {
	flags := connectionFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "truncate or delete",
		},
		&cli.StringSliceFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			Usage:   "table to leave untouched (repeatable, replaces clean.ignore_tables)",
		},
		&cli.StringSliceFlag{
			Name:  "order",
			Usage: "table to clean first, in the given order (repeatable, replaces clean.order)",
		},
		&cli.StringFlag{
			Name:  "unknown-order",
			Usage: "what to do with --order tables the database doesn't have: keep or skip",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the statements instead of executing them",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "confirm that every table may be emptied",
		},
	)

	return &cli.Command{
		Name:  "clean",
		Usage: "Empty every table of the database",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := resolveConfig(cmd, cfg)
			if err != nil {
				return err
			}

			applyCleanFlags(cmd, c)
			if err := c.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}

			dryRun := cmd.Bool("dry-run")
			if !dryRun && !cmd.Bool("yes") {
				return ErrNotConfirmed
			}

			opts, err := c.CleanerOptions()
			if err != nil {
				return err
			}

			client, err := openClient(ctx, c)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var conn database.Conn = client
			if dryRun {
				conn = database.NewRecorderFor(client)
			}

			result, err := cleaner.New(cleaner.Config{Logger: slog.Default()}).Clean(ctx, conn, opts)
			if err != nil {
				return err
			}

			if dryRun {
				return printPlan(cmd.Root().Writer, result)
			}

			printSummary(cmd.Root().Writer, result)
			return nil
		},
	}
}

func applyCleanFlags(cmd *cli.Command, c *config.Config) {
	if cmd.IsSet("mode") {
		c.Clean.Mode = cmd.String("mode")
	}

	if cmd.IsSet("ignore") {
		c.Clean.IgnoreTables = cmd.StringSlice("ignore")
	}

	if cmd.IsSet("order") {
		c.Clean.Order = cmd.StringSlice("order")
	}

	if cmd.IsSet("unknown-order") {
		c.Clean.UnknownOrder = cmd.String("unknown-order")
	}
}

// printPlan writes the statements of a dry run as a SQL script, in table
// order.
func printPlan(w io.Writer, result *cleaner.Result) error {
	stmts, err := cleaner.Plan(result.Dialect, result.Mode, result.Tables)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "-- %s %d tables (%s)\n", result.Mode, len(result.Tables), result.Dialect)
	for _, stmt := range stmts {
		fmt.Fprintf(w, "%s;\n", stmt)
	}

	return nil
}

func printSummary(w io.Writer, result *cleaner.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Dialect", result.Dialect.String()},
		{"Mode", string(result.Mode)},
		{"Tables", len(result.Tables)},
		{"Statements", result.Statements},
		{"Duration", result.Duration.Round(time.Microsecond).String()},
	})
	t.Render()
}
