package cleaner

import (
	"context"

	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/pseudomuto/dbcleaner/pkg/utils"
)

// deleteTables removes every row of every table, one DELETE per table, all
// dispatched at once. Row level constraint checks still apply, so no table
// order or constraint toggling is needed.
func (c *Cleaner) deleteTables(ctx context.Context, conn database.Conn, tables []string, run *runner) error {
	kind := conn.Dialect()

	return run.each(ctx, conn, tables, func(table string) string {
		return DeleteStatement(kind, table)
	})
}

// DeleteStatement returns the unconditional DELETE for table.
//
// Example:
//
//	DeleteStatement(dialect.MySQL, "users")       // DELETE FROM `users`
//	DeleteStatement(dialect.PostgreSQL, "users")  // DELETE FROM "users"
func DeleteStatement(kind dialect.Kind, table string) string {
	return utils.NewSQLBuilder().DeleteFrom(kind.Quote(table)).String()
}
