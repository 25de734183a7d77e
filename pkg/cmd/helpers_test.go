package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/stretchr/testify/require"
)

// sqliteFixture creates a seeded SQLite database and returns its path.
func sqliteFixture(t *testing.T) string {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app_test.db")

	client, err := database.Open(ctx, database.Options{Dialect: dialect.SQLite3, URL: path})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	for _, stmt := range []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL REFERENCES users (id))`,
		`CREATE TABLE "Audit Log" (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE schema_migrations (version TEXT PRIMARY KEY)`,
		`INSERT INTO users (id) VALUES (1), (2)`,
		`INSERT INTO posts (id, user_id) VALUES (1, 1)`,
		`INSERT INTO "Audit Log" (id) VALUES (1)`,
		`INSERT INTO schema_migrations (version) VALUES ('20240101')`,
	} {
		require.NoError(t, client.Exec(ctx, stmt))
	}

	return path
}

func countRows(t *testing.T, path, table string) int {
	t.Helper()

	ctx := context.Background()
	client, err := database.Open(ctx, database.Options{Dialect: dialect.SQLite3, URL: path})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	var n int
	err = client.DB().QueryRowxContext(ctx, "SELECT COUNT(*) FROM "+dialect.SQLite3.Quote(table)).Scan(&n)
	require.NoError(t, err)
	return n
}
