// Package catalog discovers the tables a cleaner should empty.
//
// The catalog lists the base tables of the connection's current database
// (MySQL), current schema (PostgreSQL) or main database (SQLite), sorted by
// name, and drops every name listed in Options.IgnoreTables. Views and the
// sqlite_* internal tables are never returned.
//
//	tables, err := catalog.New().TableNames(ctx, conn, catalog.Options{
//		IgnoreTables: []string{"schema_migrations"},
//	})
//	if err != nil {
//		var catErr *catalog.Error
//		if errors.As(err, &catErr) {
//			log.Fatalf("table discovery failed on %s: %v", catErr.Dialect, catErr.Err)
//		}
//	}
package catalog
