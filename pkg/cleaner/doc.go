// Package cleaner empties the tables of a relational database between test
// runs.
//
// A Clean call lists the tables through a catalog.Catalog, puts them in the
// requested order and removes every row with one of two strategies.
//
// # Delete Strategy
//
// ModeDelete issues DELETE FROM <table> for every table at once and waits
// for all of them. Row level constraint checks still apply.
//
// # Truncate Strategy
//
// ModeTruncate (the default) picks a plan per dialect:
//
//   - MySQL: one transaction that disables FOREIGN_KEY_CHECKS, truncates
//     every table concurrently, re-enables the checks and commits.
//   - PostgreSQL: a single TRUNCATE "a","b",... CASCADE statement, or
//     nothing at all for an empty table list.
//   - SQLite3: a concurrent DELETE FROM per table, no transaction.
//     AUTOINCREMENT counters in sqlite_sequence are not reset, and the
//     connection must leave foreign key enforcement off (the SQLite
//     default) since deletes reach the database in no particular order.
//
// Any other dialect fails with *UnsupportedDialectError before a single
// statement is sent.
//
// # Ordering
//
// Options.Order lists tables that must come first. Remaining tables follow
// in catalog order. Order entries the catalog does not know are kept by
// default, which makes the clean fail on the missing table. Set
// Options.UnknownOrder to UnknownOrderSkip to drop them with a warning.
//
// # Errors
//
// Nothing is retried and nothing is swallowed:
//
//   - *catalog.Error when table discovery fails
//   - *UnsupportedDialectError when no truncate plan exists
//   - *StatementError when a statement fails, with the table, the SQL and
//     the driver error
//
// # Usage Example
//
//	client, err := database.Open(ctx, database.Options{
//		Dialect: dialect.MySQL,
//		URL:     "root:secret@tcp(localhost:3306)/app_test",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	if _, err := cleaner.Clean(ctx, client, cleaner.Options{
//		IgnoreTables: []string{"schema_migrations"},
//	}); err != nil {
//		log.Fatal(err)
//	}
package cleaner
