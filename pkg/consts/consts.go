package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the config file looked up in the working directory
	ConfigFile = "dbcleaner.yaml"

	// ConfigEnvVar overrides the config file location
	ConfigEnvVar = "DBCLEANER_CONFIG"

	// DatabaseURLEnvVar supplies the connection string when no flag is given
	DatabaseURLEnvVar = "DATABASE_URL"

	// DefaultMode is the cleaning mode used when none is configured
	DefaultMode = "truncate"

	// DefaultUnknownOrder is the policy for order entries missing from the catalog
	DefaultUnknownOrder = "keep"

	// DefaultMaxOpenConns bounds the connection pool used for cleaning
	DefaultMaxOpenConns = 4

	// DefaultLogLevel is the slog level used when none is configured
	DefaultLogLevel = "info"

	// DefaultLogFormat is the slog handler used when none is configured
	DefaultLogFormat = "text"
)
