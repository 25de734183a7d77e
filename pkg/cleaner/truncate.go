package cleaner

import (
	"context"

	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/pseudomuto/dbcleaner/pkg/utils"
)

var (
	// DisableForeignKeyChecks suspends MySQL constraint checks for the session.
	DisableForeignKeyChecks = utils.NewSQLBuilder().Set("FOREIGN_KEY_CHECKS", "0").String()

	// EnableForeignKeyChecks restores MySQL constraint checks for the session.
	EnableForeignKeyChecks = utils.NewSQLBuilder().Set("FOREIGN_KEY_CHECKS", "1").String()
)

// truncateTables runs the truncate plan for the connection's dialect.
func (c *Cleaner) truncateTables(ctx context.Context, conn database.Conn, tables []string, run *runner) error {
	kind := conn.Dialect()

	switch {
	case kind.IsMySQL():
		return c.truncateMySQL(ctx, conn, tables, run)
	case kind.IsPostgreSQL():
		return c.truncatePostgreSQL(ctx, conn, tables, run)
	case kind.IsSQLite3():
		return c.truncateSQLite(ctx, conn, tables, run)
	default:
		return &UnsupportedDialectError{Dialect: kind.String()}
	}
}

// truncateMySQL truncates inside one transaction with foreign key checks
// off, so tables can go in any order:
//
//	BEGIN
//	SET FOREIGN_KEY_CHECKS=0
//	TRUNCATE TABLE `a`   -- one per table, concurrently
//	SET FOREIGN_KEY_CHECKS=1
//	COMMIT
//
// Any failure stops the plan and rolls the transaction back. Nothing is
// committed after a failure.
func (c *Cleaner) truncateMySQL(ctx context.Context, conn database.Conn, tables []string, run *runner) (err error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return &StatementError{SQL: database.StmtBegin, Err: err}
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			c.logger.Warn("Failed to roll back truncate transaction", "err", rbErr)
		}
	}()

	if err := run.exec(ctx, tx, "", DisableForeignKeyChecks); err != nil {
		return err
	}

	err = run.each(ctx, tx, tables, func(table string) string {
		return TruncateStatement(dialect.MySQL, table)
	})
	if err != nil {
		return err
	}

	if err := run.exec(ctx, tx, "", EnableForeignKeyChecks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &StatementError{SQL: database.StmtCommit, Err: err}
	}

	return nil
}

// truncatePostgreSQL truncates every table in a single statement. CASCADE
// also empties tables that reference the listed ones, so no constraint
// toggling or ordering is needed, and one statement is atomic on its own.
// An empty table list issues nothing.
func (c *Cleaner) truncatePostgreSQL(ctx context.Context, conn database.Conn, tables []string, run *runner) error {
	if len(tables) == 0 {
		return nil
	}

	return run.exec(ctx, conn, "", CascadeTruncateStatement(tables))
}

// truncateSQLite empties each table on its own, concurrently, outside any
// transaction. SQLite has no TRUNCATE; an unconditional DELETE is its
// truncate optimization. Nothing toggles foreign keys here, so a connection
// opened with foreign_keys(ON) can fail on a parent deleted before its child.
func (c *Cleaner) truncateSQLite(ctx context.Context, conn database.Conn, tables []string, run *runner) error {
	return run.each(ctx, conn, tables, func(table string) string {
		return TruncateStatement(dialect.SQLite3, table)
	})
}

// TruncateStatement returns the single table truncate for kind.
//
// Example:
//
//	TruncateStatement(dialect.MySQL, "users")    // TRUNCATE TABLE `users`
//	TruncateStatement(dialect.SQLite3, "users")  // DELETE FROM "users"
func TruncateStatement(kind dialect.Kind, table string) string {
	if kind.IsSQLite3() {
		return DeleteStatement(kind, table)
	}

	return utils.NewSQLBuilder().Truncate().Table(kind.Quote(table)).String()
}

// CascadeTruncateStatement returns the PostgreSQL statement truncating all
// tables at once.
//
// Example:
//
//	CascadeTruncateStatement([]string{"a", "b"})  // TRUNCATE "a","b" CASCADE
func CascadeTruncateStatement(tables []string) string {
	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = dialect.PostgreSQL.Quote(table)
	}

	return utils.NewSQLBuilder().Truncate().Tables(quoted...).Cascade().String()
}
