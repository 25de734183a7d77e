package cleaner

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

var (
	// ErrInvalidMode is returned for a Mode other than truncate or delete.
	ErrInvalidMode = errors.New("invalid clean mode")

	// ErrInvalidUnknownOrder is returned for an unrecognized UnknownOrderPolicy.
	ErrInvalidUnknownOrder = errors.New("invalid unknown order policy")
)

type (
	// UnsupportedDialectError is returned when tables would have to be
	// truncated on a dialect without a truncate plan. No statement has been
	// issued when it is returned.
	UnsupportedDialectError struct {
		Dialect string
	}

	// StatementError reports a failed cleaning or transaction control
	// statement. Table is empty for statements that are not about a single
	// table. Err is the driver's error, untouched.
	StatementError struct {
		Table string
		SQL   string
		Err   error
	}
)

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("cannot truncate tables for unsupported dialect %q", e.Dialect)
}

// Unwrap lets errors.Is match dialect.ErrUnsupported.
func (e *UnsupportedDialectError) Unwrap() error {
	return dialect.ErrUnsupported
}

func (e *StatementError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("failed to execute %q: %v", e.SQL, e.Err)
	}

	return fmt.Sprintf("failed to clean table %q (%s): %v", e.Table, e.SQL, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}
