package docker

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	// DefaultMySQLVersion is the mysql image tag used when none is given
	DefaultMySQLVersion = "8.4"

	// DefaultPostgresVersion is the postgres image tag used when none is given
	DefaultPostgresVersion = "16-alpine"

	defaultDatabase = "dbcleaner"
	defaultUsername = "dbcleaner"
	defaultPassword = "dbcleaner"
)

// ErrNoImage is returned when there is no container image for a dialect.
var ErrNoImage = errors.New("no container image for dialect")

type (
	// DockerOptions represents options for running a database in Docker
	DockerOptions struct {
		// Dialect selects the server to run: MySQL or PostgreSQL
		Dialect dialect.Kind

		// Version is the image tag (default depends on Dialect)
		Version string

		// Database is created on startup (default: dbcleaner)
		Database string

		// Username and Password are the credentials of the created user
		// (default: dbcleaner/dbcleaner)
		Username string
		Password string
	}

	// Container manages a throwaway database server.
	Container struct {
		options   DockerOptions
		container testcontainers.Container
		dsn       string
	}
)

// New creates a Container for the given dialect with default options.
//
// Example:
//
//	container := docker.New(dialect.PostgreSQL)
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
func New(kind dialect.Kind) *Container {
	return NewWithOptions(DockerOptions{Dialect: kind})
}

// NewWithOptions creates a Container with custom options.
//
// Example:
//
//	container := docker.NewWithOptions(docker.DockerOptions{
//		Dialect: dialect.MySQL,
//		Version: "8.0",
//	})
func NewWithOptions(opts DockerOptions) *Container {
	if opts.Database == "" {
		opts.Database = defaultDatabase
	}

	if opts.Username == "" {
		opts.Username = defaultUsername
	}

	if opts.Password == "" {
		opts.Password = defaultPassword
	}

	return &Container{options: opts}
}

// Start runs the database server and waits until it accepts connections.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	kind := c.options.Dialect

	switch {
	case kind.IsMySQL():
		return c.startMySQL(ctx)
	case kind.IsPostgreSQL():
		return c.startPostgres(ctx)
	default:
		return errors.Wrapf(ErrNoImage, "%q", kind.String())
	}
}

func (c *Container) startMySQL(ctx context.Context) error {
	version := c.options.Version
	if version == "" {
		version = DefaultMySQLVersion
	}

	container, err := mysql.Run(ctx,
		fmt.Sprintf("mysql:%s", version),
		mysql.WithDatabase(c.options.Database),
		mysql.WithUsername(c.options.Username),
		mysql.WithPassword(c.options.Password),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start MySQL container")
	}

	dsn, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return errors.Wrap(err, "failed to get connection string")
	}

	c.container = container
	c.dsn = dsn
	return nil
}

func (c *Container) startPostgres(ctx context.Context) error {
	version := c.options.Version
	if version == "" {
		version = DefaultPostgresVersion
	}

	container, err := postgres.Run(ctx,
		fmt.Sprintf("postgres:%s", version),
		postgres.WithDatabase(c.options.Database),
		postgres.WithUsername(c.options.Username),
		postgres.WithPassword(c.options.Password),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start PostgreSQL container")
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return errors.Wrap(err, "failed to get connection string")
	}

	c.container = container
	c.dsn = dsn
	return nil
}

// Stop stops and removes the container.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil // Already stopped
	}

	err := c.container.Terminate(ctx)
	c.container = nil
	c.dsn = ""

	if err != nil {
		return errors.Wrap(err, "failed to stop container")
	}

	return nil
}

// GetDSN returns a connection string accepted by database.Open for the
// container's dialect.
func (c *Container) GetDSN() (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	return c.dsn, nil
}

// Dialect returns the dialect of the database server.
func (c *Container) Dialect() dialect.Kind {
	return c.options.Dialect
}

// IsRunning returns true if the container is currently running
func (c *Container) IsRunning() bool {
	return c.container != nil
}
