package dialect

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/utils"
)

// ErrUnsupported is returned when an operation needs a dialect outside the
// supported set.
var ErrUnsupported = errors.New("unsupported dialect")

type (
	// Kind is a database dialect. The zero value is an unsupported dialect
	// with an empty name.
	Kind struct {
		id   id
		name string
	}

	id int
)

const (
	unsupported id = iota
	mysql
	postgresql
	sqlite3
)

var (
	// MySQL covers MySQL and MariaDB.
	MySQL = Kind{id: mysql, name: "mysql"}

	// PostgreSQL covers PostgreSQL and wire-compatible servers.
	PostgreSQL = Kind{id: postgresql, name: "postgresql"}

	// SQLite3 covers SQLite version 3 databases.
	SQLite3 = Kind{id: sqlite3, name: "sqlite3"}
)

// Parse maps a dialect or driver name onto a Kind. Common driver aliases
// ("postgres", "pgx", "mariadb", "sqlite") are accepted. Matching is case
// insensitive. Unknown names yield an unsupported Kind carrying the input.
func Parse(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mysql", "mariadb":
		return MySQL
	case "postgresql", "postgres", "pg", "pgx":
		return PostgreSQL
	case "sqlite3", "sqlite":
		return SQLite3
	default:
		return Unsupported(name)
	}
}

// Unsupported returns a Kind for a dialect the cleaner does not handle.
func Unsupported(name string) Kind {
	return Kind{id: unsupported, name: name}
}

// String returns the canonical dialect name, or the original name for
// unsupported dialects.
func (k Kind) String() string {
	return k.name
}

// Supported reports whether k is one of MySQL, PostgreSQL or SQLite3.
func (k Kind) Supported() bool {
	return k.id != unsupported
}

// IsMySQL reports whether k is MySQL.
func (k Kind) IsMySQL() bool { return k.id == mysql }

// IsPostgreSQL reports whether k is PostgreSQL.
func (k Kind) IsPostgreSQL() bool { return k.id == postgresql }

// IsSQLite3 reports whether k is SQLite3.
func (k Kind) IsSQLite3() bool { return k.id == sqlite3 }

// Quote quotes a table name for use in statements of this dialect. MySQL
// uses backticks; every other dialect, supported or not, gets ANSI double
// quotes. The whole name is one identifier, dots included.
func (k Kind) Quote(name string) string {
	if k.id == mysql {
		return utils.BacktickIdentifier(name)
	}

	return utils.DoubleQuoteIdentifier(name)
}

// Driver returns the database/sql driver name registered for k.
func (k Kind) Driver() (string, error) {
	switch k.id {
	case mysql:
		return "mysql", nil
	case postgresql:
		return "pgx", nil
	case sqlite3:
		return "sqlite", nil
	default:
		return "", errors.Wrapf(ErrUnsupported, "no driver for %q", k.name)
	}
}
