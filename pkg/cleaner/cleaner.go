package cleaner

import (
	"context"
	"log/slog"
	"time"

	"github.com/pseudomuto/dbcleaner/pkg/catalog"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

type (
	// Cleaner empties the tables of a database.
	//
	// A Cleaner holds no per-call state and is safe for concurrent use, as
	// long as concurrent calls target different databases.
	//
	// Example usage:
	//
	//	c := cleaner.New(cleaner.Config{})
	//
	//	result, err := c.Clean(ctx, conn, cleaner.Options{
	//		Mode:         cleaner.ModeTruncate,
	//		IgnoreTables: []string{"schema_migrations"},
	//	})
	//	if err != nil {
	//		log.Fatal(err)
	//	}
	//
	//	fmt.Printf("emptied %d tables in %v\n", len(result.Tables), result.Duration)
	Cleaner struct {
		catalog catalog.Catalog
		logger  *slog.Logger
	}

	// Config contains configuration options for creating a new Cleaner.
	Config struct {
		// Catalog discovers the tables to clean (default: catalog.New())
		Catalog catalog.Catalog

		// Logger receives per-statement debug logs (default: slog.Default())
		Logger *slog.Logger
	}

	// Result describes a successful Clean call.
	Result struct {
		// Mode is the strategy that ran
		Mode Mode

		// Dialect is the dialect of the cleaned connection
		Dialect dialect.Kind

		// Tables is the final, ordered table list
		Tables []string

		// Statements counts the cleaning and constraint statements issued,
		// not counting transaction control
		Statements int

		// Duration is the wall time of the call, table discovery included
		Duration time.Duration
	}
)

// New creates a Cleaner.
func New(config Config) *Cleaner {
	c := &Cleaner{
		catalog: config.Catalog,
		logger:  config.Logger,
	}

	if c.catalog == nil {
		c.catalog = catalog.New()
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Clean empties every table of conn with a Cleaner using the default
// catalog and logger.
func Clean(ctx context.Context, conn database.Conn, opts Options) (*Result, error) {
	return New(Config{}).Clean(ctx, conn, opts)
}

// Clean empties every table the catalog returns for conn, minus
// opts.IgnoreTables.
//
// The steps are:
//   - merge opts over Defaults
//   - list tables through the catalog (failures come back as *catalog.Error)
//   - apply opts.Order with FinalOrder
//   - run the delete strategy or the dialect's truncate plan
//
// Truncating on a dialect without a plan fails with
// *UnsupportedDialectError before the catalog is consulted. Statement
// failures come back as *StatementError. The database may be partially
// cleaned when an error is returned, but a MySQL truncate is never
// committed after a failure.
func (c *Cleaner) Clean(ctx context.Context, conn database.Conn, opts Options) (*Result, error) {
	start := time.Now()
	kind := conn.Dialect()

	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	if opts.Mode == ModeTruncate && !kind.Supported() {
		return nil, &UnsupportedDialectError{Dialect: kind.String()}
	}

	tables, err := c.catalog.TableNames(ctx, conn, catalog.Options{IgnoreTables: opts.IgnoreTables})
	if err != nil {
		return nil, err
	}

	order := opts.Order
	if opts.UnknownOrder == UnknownOrderSkip {
		var unknown []string
		order, unknown = FilterUnknown(order, tables)
		for _, name := range unknown {
			c.logger.Warn("Skipping ordered table missing from catalog", "table", name)
		}
	}

	final := FinalOrder(tables, order)
	run := &runner{logger: c.logger.With("dialect", kind.String(), "mode", string(opts.Mode))}

	if opts.Mode == ModeDelete {
		err = c.deleteTables(ctx, conn, final, run)
	} else {
		err = c.truncateTables(ctx, conn, final, run)
	}

	if err != nil {
		return nil, err
	}

	result := &Result{
		Mode:       opts.Mode,
		Dialect:    kind,
		Tables:     final,
		Statements: run.count(),
		Duration:   time.Since(start),
	}

	c.logger.Info("Cleaned database",
		"mode", string(result.Mode),
		"dialect", kind.String(),
		"tables", len(result.Tables),
		"statements", result.Statements,
		"duration", result.Duration,
	)

	return result, nil
}
