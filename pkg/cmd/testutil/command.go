package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes the flags and action of command as a standalone app and returns
// what it wrote.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	return RunCommandWithContext(context.Background(), t, command, args...)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(ctx, append([]string{"test"}, args...))

	return buf.String(), err
}
