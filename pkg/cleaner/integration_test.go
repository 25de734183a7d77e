package cleaner_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/dbcleaner/pkg/cleaner"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/pseudomuto/dbcleaner/pkg/docker"
	"github.com/stretchr/testify/require"
)

// schema creates a parent/child pair linked by a foreign key, a table with an
// awkward name and a table that is expected to survive cleaning.
var schema = map[string][]string{
	"mysql": {
		"CREATE TABLE users (id INT PRIMARY KEY)",
		"CREATE TABLE posts (id INT PRIMARY KEY, user_id INT NOT NULL, FOREIGN KEY (user_id) REFERENCES users (id))",
		"CREATE TABLE `Audit Log` (id INT PRIMARY KEY)",
		"CREATE TABLE schema_migrations (version VARCHAR(32) PRIMARY KEY)",
	},
	"postgresql": {
		`CREATE TABLE users (id INT PRIMARY KEY)`,
		`CREATE TABLE posts (id INT PRIMARY KEY, user_id INT NOT NULL REFERENCES users (id))`,
		`CREATE TABLE "Audit Log" (id INT PRIMARY KEY)`,
		`CREATE TABLE schema_migrations (version VARCHAR(32) PRIMARY KEY)`,
	},
	"sqlite3": {
		`CREATE TABLE users (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL REFERENCES users (id))`,
		`CREATE TABLE "Audit Log" (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE schema_migrations (version TEXT PRIMARY KEY)`,
	},
}

func seed(t *testing.T, ctx context.Context, client *database.Client) {
	t.Helper()

	audit := client.Dialect().Quote("Audit Log")
	for _, stmt := range []string{
		"INSERT INTO users (id) VALUES (1)",
		"INSERT INTO users (id) VALUES (2)",
		"INSERT INTO posts (id, user_id) VALUES (1, 1)",
		"INSERT INTO " + audit + " (id) VALUES (1)",
		"INSERT INTO schema_migrations (version) VALUES ('20240101')",
	} {
		require.NoError(t, client.Exec(ctx, stmt))
	}
}

func rowCount(t *testing.T, ctx context.Context, client *database.Client, table string) int {
	t.Helper()

	var n int
	err := client.DB().QueryRowxContext(ctx, "SELECT COUNT(*) FROM "+client.Dialect().Quote(table)).Scan(&n)
	require.NoError(t, err)
	return n
}

func exerciseCleaner(t *testing.T, ctx context.Context, client *database.Client) {
	t.Helper()

	for _, stmt := range schema[client.Dialect().String()] {
		require.NoError(t, client.Exec(ctx, stmt))
	}

	for _, mode := range []cleaner.Mode{cleaner.ModeTruncate, cleaner.ModeDelete} {
		t.Run(string(mode), func(t *testing.T) {
			seed(t, ctx, client)

			opts := cleaner.Options{
				Mode:         mode,
				IgnoreTables: []string{"schema_migrations"},
			}

			// deletes run concurrently and MySQL and PostgreSQL check
			// constraints, so the child table goes first there. SQLite leaves
			// foreign key enforcement off.
			if mode == cleaner.ModeDelete && !client.Dialect().IsSQLite3() {
				_, err := cleaner.Clean(ctx, client, cleaner.Options{
					Mode:         mode,
					IgnoreTables: []string{"schema_migrations", "users", "Audit Log"},
				})
				require.NoError(t, err)
			}

			result, err := cleaner.Clean(ctx, client, opts)
			require.NoError(t, err)
			require.ElementsMatch(t, []string{"Audit Log", "posts", "users"}, result.Tables)

			for _, table := range []string{"users", "posts", "Audit Log"} {
				require.Zero(t, rowCount(t, ctx, client, table), table)
			}
			require.Equal(t, 1, rowCount(t, ctx, client, "schema_migrations"))

			// cleaning an empty database succeeds and changes nothing
			_, err = cleaner.Clean(ctx, client, opts)
			require.NoError(t, err)
			require.Equal(t, 1, rowCount(t, ctx, client, "schema_migrations"))

			require.NoError(t, client.Exec(ctx, "DELETE FROM schema_migrations"))
		})
	}

	t.Run("truncate parent first", func(t *testing.T) {
		seed(t, ctx, client)

		result, err := cleaner.Clean(ctx, client, cleaner.Options{
			Mode:         cleaner.ModeTruncate,
			Order:        []string{"users", "posts"},
			IgnoreTables: []string{"schema_migrations"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"users", "posts", "Audit Log"}, result.Tables)

		for _, table := range []string{"users", "posts", "Audit Log"} {
			require.Zero(t, rowCount(t, ctx, client, table), table)
		}

		require.NoError(t, client.Exec(ctx, "DELETE FROM schema_migrations"))
	})
}

func TestClean_SQLite(t *testing.T) {
	ctx := context.Background()

	client, err := database.Open(ctx, database.Options{
		Dialect: dialect.SQLite3,
		URL:     filepath.Join(t.TempDir(), "clean.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	exerciseCleaner(t, ctx, client)
}

func TestClean_SQLiteKeepsAutoincrement(t *testing.T) {
	ctx := context.Background()

	client, err := database.Open(ctx, database.Options{
		Dialect: dialect.SQLite3,
		URL:     filepath.Join(t.TempDir(), "seq.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Exec(ctx, `CREATE TABLE events (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)`))
	require.NoError(t, client.Exec(ctx, `INSERT INTO events (name) VALUES ('a'), ('b')`))

	result, err := cleaner.Clean(ctx, client, cleaner.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"events"}, result.Tables)

	require.NoError(t, client.Exec(ctx, `INSERT INTO events (name) VALUES ('c')`))

	var id int
	require.NoError(t, client.DB().QueryRowxContext(ctx, `SELECT id FROM events`).Scan(&id))
	require.Equal(t, 3, id)
}

func TestClean_Containers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("Docker daemon not running")
	}

	for _, kind := range []dialect.Kind{dialect.MySQL, dialect.PostgreSQL} {
		t.Run(kind.String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			container := docker.New(kind)
			t.Cleanup(func() { _ = container.Stop(context.Background()) })
			require.NoError(t, container.Start(ctx))

			dsn, err := container.GetDSN()
			require.NoError(t, err)

			client, err := database.Open(ctx, database.Options{Dialect: kind, URL: dsn})
			require.NoError(t, err)
			t.Cleanup(func() { _ = client.Close() })

			exerciseCleaner(t, ctx, client)
		})
	}
}
