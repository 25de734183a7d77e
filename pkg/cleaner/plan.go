package cleaner

import (
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

// Plan returns the statements Clean issues for tables, already in final
// order, including MySQL transaction control. Statements Clean dispatches
// concurrently are listed in table order here but may reach the database
// in any order.
//
// Example:
//
//	stmts, _ := cleaner.Plan(dialect.PostgreSQL, cleaner.ModeTruncate, []string{"a", "b"})
//	// []string{`TRUNCATE "a","b" CASCADE`}
func Plan(kind dialect.Kind, mode Mode, tables []string) ([]string, error) {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	if mode == ModeDelete {
		return mapTables(tables, func(table string) string {
			return DeleteStatement(kind, table)
		}), nil
	}

	switch {
	case kind.IsMySQL():
		stmts := make([]string, 0, len(tables)+4)
		stmts = append(stmts, database.StmtBegin, DisableForeignKeyChecks)
		stmts = append(stmts, mapTables(tables, func(table string) string {
			return TruncateStatement(kind, table)
		})...)
		return append(stmts, EnableForeignKeyChecks, database.StmtCommit), nil
	case kind.IsPostgreSQL():
		if len(tables) == 0 {
			return []string{}, nil
		}
		return []string{CascadeTruncateStatement(tables)}, nil
	case kind.IsSQLite3():
		return mapTables(tables, func(table string) string {
			return TruncateStatement(kind, table)
		}), nil
	default:
		return nil, &UnsupportedDialectError{Dialect: kind.String()}
	}
}

func mapTables(tables []string, fn func(string) string) []string {
	out := make([]string, len(tables))
	for i, table := range tables {
		out[i] = fn(table)
	}

	return out
}
