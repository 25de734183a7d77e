package database_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	rec := database.NewRecorder(dialect.MySQL)

	require.Equal(t, dialect.MySQL, rec.Dialect())
	require.NoError(t, rec.Exec(ctx, "DELETE FROM `a`"))

	tx, err := rec.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "SET FOREIGN_KEY_CHECKS=0"))
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback())

	require.Equal(t, []string{
		"DELETE FROM `a`",
		database.StmtBegin,
		"SET FOREIGN_KEY_CHECKS=0",
		database.StmtCommit,
		database.StmtRollback,
	}, rec.Statements())
}

func TestRecorder_Concurrent(t *testing.T) {
	ctx := context.Background()
	rec := database.NewRecorder(dialect.SQLite3)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = rec.Exec(ctx, "DELETE FROM \"t\"")
		}()
	}
	wg.Wait()

	require.Len(t, rec.Statements(), 50)
}

func TestRecorder_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("no source", func(t *testing.T) {
		rows, err := database.NewRecorder(dialect.PostgreSQL).Query(ctx, "SELECT 1")
		require.ErrorIs(t, err, database.ErrNoSource)
		require.Nil(t, rows)
	})

	t.Run("forwards to source", func(t *testing.T) {
		source := database.NewRecorder(dialect.SQLite3)
		rec := database.NewRecorderFor(source)
		require.Equal(t, dialect.SQLite3, rec.Dialect())

		// the source is itself sourceless, so its error comes back
		_, err := rec.Query(ctx, "SELECT 1")
		require.ErrorIs(t, err, database.ErrNoSource)
	})
}
