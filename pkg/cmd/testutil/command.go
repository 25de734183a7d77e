package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes command under a throwaway root command and returns
// everything it wrote to its output.
//
// Example:
//
//	out, err := testutil.RunCommand(t, tables(nil), "--url", dbPath)
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, args...)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:      "test",
		Commands:  []*cli.Command{command},
		Writer:    &buf,
		ErrWriter: &buf,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return buf.String(), err
}

// RunApp executes a root command, as built by cmd.NewApp, and returns its
// output.
func RunApp(t *testing.T, app *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = &buf

	err := app.Run(context.Background(), append([]string{app.Name}, args...))
	return buf.String(), err
}
