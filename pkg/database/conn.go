package database

import (
	"context"

	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

type (
	// Conn is a database handle that can run statements, answer metadata
	// queries and open transactions.
	Conn interface {
		Dialect() dialect.Kind
		Exec(context.Context, string, ...any) error
		Query(context.Context, string, ...any) (Rows, error)
		Begin(context.Context) (Tx, error)
	}

	// Tx is a transaction opened by Conn.Begin. Every statement executed on
	// a Tx runs on the same underlying session.
	Tx interface {
		Exec(context.Context, string, ...any) error
		Commit() error
		Rollback() error
	}

	// Rows is the cursor returned by Conn.Query. *sql.Rows satisfies it.
	Rows interface {
		Next() bool
		Scan(...any) error
		Close() error
		Err() error
	}
)
