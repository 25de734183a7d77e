package cleaner

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type (
	// execer is satisfied by both database.Conn and database.Tx.
	execer interface {
		Exec(context.Context, string, ...any) error
	}

	// runner issues statements, counting and logging each one and turning
	// failures into *StatementError.
	runner struct {
		logger *slog.Logger
		issued atomic.Int64
	}
)

func (r *runner) exec(ctx context.Context, e execer, table, sql string) error {
	r.issued.Add(1)
	r.logger.Debug("Executing statement", "table", table, "sql", sql)

	if err := e.Exec(ctx, sql); err != nil {
		return &StatementError{Table: table, SQL: sql, Err: err}
	}

	return nil
}

// each runs stmt(table) for every table at once and waits for all of them.
// The first failure is returned and cancels the context handed to the
// statements still in flight.
func (r *runner) each(ctx context.Context, e execer, tables []string, stmt func(string) string) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, table := range tables {
		g.Go(func() error {
			return r.exec(gctx, e, table, stmt(table))
		})
	}

	return g.Wait()
}

func (r *runner) count() int {
	return int(r.issued.Load())
}
