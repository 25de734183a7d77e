// Package dialect identifies the SQL dialect of a database connection.
//
// The set of dialects the cleaner knows how to empty is closed: MySQL,
// PostgreSQL and SQLite3. Anything else parses to an Unsupported Kind that
// still remembers the name it was given, so callers can report it.
//
//	kind := dialect.Parse("postgres")
//	fmt.Println(kind)                  // postgresql
//	fmt.Println(kind.Quote("Users"))   // "Users"
//
//	kind = dialect.Parse("mssql")
//	fmt.Println(kind.Supported())      // false
//	fmt.Println(kind)                  // mssql
package dialect
