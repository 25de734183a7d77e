// Package cmd provides the dbcleaner command line interface.
//
// Commands are plain *cli.Command values built by constructor functions and
// collected into the root command through the fx "commands" group. The root
// command loads dotenv files and configures slog before any command runs.
//
// # Available Commands
//
//   - clean: empty every table, or print the statements with --dry-run
//   - tables: list the tables clean would empty
//
// # Connection Settings
//
// The database comes from, in order of precedence, the --url and --dialect
// flags, the database section of dbcleaner.yaml, and $DATABASE_URL. The
// dialect is inferred from the URL when not given.
//
// # Example Usage
//
//	dbcleaner tables --url postgres://localhost/app_test
//	dbcleaner clean --url postgres://localhost/app_test --dry-run
//	dbcleaner clean --mode delete --ignore schema_migrations --yes
package cmd
