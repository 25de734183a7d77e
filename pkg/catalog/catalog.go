package catalog

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

const (
	mysqlTablesQuery = `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`

	postgresTablesQuery = `SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = current_schema() ORDER BY tablename`

	sqliteTablesQuery = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
)

type (
	// Catalog returns the names of the tables visible on a connection.
	Catalog interface {
		TableNames(context.Context, database.Conn, Options) ([]string, error)
	}

	// Options controls which tables are returned.
	Options struct {
		// IgnoreTables are excluded by exact, case sensitive match
		IgnoreTables []string
	}

	// Error reports a failed table discovery.
	Error struct {
		Dialect dialect.Kind
		Err     error
	}

	metadataCatalog struct{}
)

// New returns a Catalog that reads the database's own metadata tables.
func New() Catalog {
	return metadataCatalog{}
}

// Query returns the metadata query used to list tables for kind.
func Query(kind dialect.Kind) (string, error) {
	switch {
	case kind.IsMySQL():
		return mysqlTablesQuery, nil
	case kind.IsPostgreSQL():
		return postgresTablesQuery, nil
	case kind.IsSQLite3():
		return sqliteTablesQuery, nil
	default:
		return "", errors.Wrapf(dialect.ErrUnsupported, "cannot list tables for %q", kind.String())
	}
}

func (metadataCatalog) TableNames(ctx context.Context, conn database.Conn, opts Options) ([]string, error) {
	kind := conn.Dialect()

	query, err := Query(kind)
	if err != nil {
		return nil, &Error{Dialect: kind, Err: err}
	}

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, &Error{Dialect: kind, Err: errors.Wrap(err, "failed to query tables")}
	}
	defer func() { _ = rows.Close() }()

	ignored := make(map[string]struct{}, len(opts.IgnoreTables))
	for _, name := range opts.IgnoreTables {
		ignored[name] = struct{}{}
	}

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &Error{Dialect: kind, Err: errors.Wrap(err, "failed to scan table row")}
		}

		if _, skip := ignored[name]; skip {
			continue
		}

		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, &Error{Dialect: kind, Err: errors.Wrap(err, "error iterating table rows")}
	}

	return tables, nil
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to list %s tables: %v", e.Dialect, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
