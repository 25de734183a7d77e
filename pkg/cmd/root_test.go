package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/dbcleaner/pkg/cmd/testutil"
	"github.com/pseudomuto/dbcleaner/pkg/config"
	"github.com/pseudomuto/dbcleaner/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

var testVersion = &Version{Version: "1.2.3", Commit: "abc123", Timestamp: "2024-01-01"}

// printEnv prints an environment variable and whether debug logging is on.
func printEnv(key string) *cli.Command {
	return &cli.Command{
		Name: "printenv",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Root().Writer, "%s=%s debug=%t",
				key,
				os.Getenv(key),
				slog.Default().Enabled(ctx, slog.LevelDebug),
			)
			return nil
		},
	}
}

func restoreLogger(t *testing.T) {
	t.Helper()

	logger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(logger) })
}

func TestNewApp_Version(t *testing.T) {
	out, err := testutil.RunApp(t, NewApp(testVersion, nil, nil), "--version")
	require.NoError(t, err)
	require.Contains(t, out, "Version: 1.2.3")
	require.Contains(t, out, "Commit: abc123")
	require.Contains(t, out, "Date: 2024-01-01")
}

func TestNewApp_EnvFile(t *testing.T) {
	restoreLogger(t)

	const key = "DBCLEANER_PROBE_VALUE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(key+"=from-dotenv\n"), consts.ModeFile))

	out, err := testutil.RunApp(t, NewApp(testVersion, nil, []*cli.Command{printEnv(key)}), "--env-file", envFile, "printenv")
	require.NoError(t, err)
	require.Contains(t, out, key+"=from-dotenv")

	_, err = testutil.RunApp(t, NewApp(testVersion, nil, []*cli.Command{printEnv(key)}), "--env-file", "missing.env", "printenv")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load env files")
}

func TestNewApp_Logging(t *testing.T) {
	restoreLogger(t)

	cfg := config.Default()
	cfg.Logging.Level = "debug"

	out, err := testutil.RunApp(t, NewApp(testVersion, cfg, []*cli.Command{printEnv("HOME")}), "printenv")
	require.NoError(t, err)
	require.Contains(t, out, "debug=true")

	out, err = testutil.RunApp(t, NewApp(testVersion, cfg, []*cli.Command{printEnv("HOME")}), "--log-level", "warn", "printenv")
	require.NoError(t, err)
	require.Contains(t, out, "debug=false")
}
