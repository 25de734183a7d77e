package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/cleaner"
	"github.com/pseudomuto/dbcleaner/pkg/consts"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"gopkg.in/yaml.v3"
)

type (
	// Database describes the connection to the database being cleaned.
	Database struct {
		// Dialect is one of mysql, postgresql or sqlite3 (aliases such as
		// postgres and sqlite are accepted)
		Dialect string `yaml:"dialect"`

		// URL is the connection string. Environment variables are expanded
		// when the connection is opened, so `${DATABASE_URL}` is allowed and
		// may come from a .env file.
		URL string `yaml:"url"`

		// MaxOpenConns bounds the connection pool (default: 4, always 1 for
		// SQLite)
		MaxOpenConns int `yaml:"max_open_conns,omitempty"`
	}

	// Clean holds the options handed to the cleaner.
	Clean struct {
		// Mode is truncate or delete (default: truncate)
		Mode string `yaml:"mode,omitempty"`

		// IgnoreTables are never cleaned
		IgnoreTables []string `yaml:"ignore_tables,omitempty"`

		// Order lists tables to clean first, in this order
		Order []string `yaml:"order,omitempty"`

		// UnknownOrder decides what happens to Order entries the database
		// doesn't have: keep or skip (default: keep)
		UnknownOrder string `yaml:"unknown_order,omitempty"`
	}

	// Logging configures the process logger.
	Logging struct {
		// Level is debug, info, warn or error (default: info)
		Level string `yaml:"level,omitempty"`

		// Format is text or json (default: text)
		Format string `yaml:"format,omitempty"`
	}

	// Config represents the dbcleaner configuration file.
	Config struct {
		Database Database `yaml:"database"`
		Clean    Clean    `yaml:"clean"`
		Logging  Logging  `yaml:"logging"`
	}
)

// LoadConfig parses a configuration from the provided io.Reader.
//
// Missing values are filled from pkg/consts. The result is not validated;
// call Validate once command line overrides have been applied.
//
// Example:
//
//	yamlData := `
//	database:
//	  dialect: postgresql
//	  url: ${DATABASE_URL}
//	clean:
//	  ignore_tables: [schema_migrations]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Cleaning %s database\n", cfg.Database.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("dbcleaner.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Default returns a configuration with every default applied and no
// database configured.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Path returns the configuration file to load: the DBCLEANER_CONFIG
// environment variable when set, otherwise dbcleaner.yaml.
func Path() string {
	if path := os.Getenv(consts.ConfigEnvVar); path != "" {
		return path
	}

	return consts.ConfigFile
}

func (c *Config) applyDefaults() {
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = consts.DefaultMaxOpenConns
	}

	if c.Clean.Mode == "" {
		c.Clean.Mode = consts.DefaultMode
	}

	if c.Clean.UnknownOrder == "" {
		c.Clean.UnknownOrder = consts.DefaultUnknownOrder
	}

	if c.Logging.Level == "" {
		c.Logging.Level = consts.DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = consts.DefaultLogFormat
	}
}

// Validate checks every configured value. An empty dialect or URL is
// accepted here because both may still come from the command line.
func (c *Config) Validate() error {
	if c.Database.Dialect != "" {
		if kind := dialect.Parse(c.Database.Dialect); !kind.Supported() {
			return errors.Wrapf(dialect.ErrUnsupported, "database.dialect %q", c.Database.Dialect)
		}
	}

	if c.Database.MaxOpenConns < 0 {
		return errors.Errorf("database.max_open_conns must not be negative, got %d", c.Database.MaxOpenConns)
	}

	if _, err := cleaner.ParseMode(c.Clean.Mode); err != nil {
		return errors.Wrap(err, "clean.mode")
	}

	if _, err := cleaner.ParseUnknownOrder(c.Clean.UnknownOrder); err != nil {
		return errors.Wrap(err, "clean.unknown_order")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return errors.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}

	return nil
}

// DatabaseOptions converts the database section for database.Open,
// expanding environment variables in the URL.
func (c *Config) DatabaseOptions() database.Options {
	return database.Options{
		Dialect:      dialect.Parse(c.Database.Dialect),
		URL:          os.ExpandEnv(c.Database.URL),
		MaxOpenConns: c.Database.MaxOpenConns,
	}
}

// CleanerOptions converts the clean section for cleaner.Clean.
func (c *Config) CleanerOptions() (cleaner.Options, error) {
	mode, err := cleaner.ParseMode(c.Clean.Mode)
	if err != nil {
		return cleaner.Options{}, err
	}

	policy, err := cleaner.ParseUnknownOrder(c.Clean.UnknownOrder)
	if err != nil {
		return cleaner.Options{}, err
	}

	return cleaner.Options{
		Mode:         mode,
		IgnoreTables: c.Clean.IgnoreTables,
		Order:        c.Clean.Order,
		UnknownOrder: policy,
	}, nil
}
