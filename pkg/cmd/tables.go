package cmd

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pseudomuto/dbcleaner/pkg/catalog"
	"github.com/pseudomuto/dbcleaner/pkg/config"
	"github.com/urfave/cli/v3"
)

// tables creates the tables command, which lists the tables clean would
// empty, after clean.ignore_tables (or --ignore) is applied.
//
// Example:
//
//	dbcleaner tables --url "file:tmp/test.db"
func tables(cfg *config.Config) *cli.Command {
	flags := connectionFlags()
	flags = append(flags,
		&cli.StringSliceFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			Usage:   "table to leave out (repeatable, replaces clean.ignore_tables)",
		},
	)

	return &cli.Command{
		Name:  "tables",
		Usage: "List the tables that would be cleaned",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := resolveConfig(cmd, cfg)
			if err != nil {
				return err
			}

			if cmd.IsSet("ignore") {
				c.Clean.IgnoreTables = cmd.StringSlice("ignore")
			}

			client, err := openClient(ctx, c)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			names, err := catalog.New().TableNames(ctx, client, catalog.Options{
				IgnoreTables: c.Clean.IgnoreTables,
			})
			if err != nil {
				return err
			}

			printTables(cmd.Root().Writer, names)
			return nil
		},
	}
}

func printTables(w io.Writer, names []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Table"})

	for i, name := range names {
		t.AppendRow(table.Row{i + 1, name})
	}

	t.AppendFooter(table.Row{"", len(names)})
	t.Render()
}
