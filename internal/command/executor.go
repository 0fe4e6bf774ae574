package command

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/setup-gh/setup-gh/internal/errors"
)

// executor implements Executor on top of a ShellExecutor
type executor struct {
	shell ShellExecutor
}

// NewExecutor creates a new executor with the given shell executor
func NewExecutor(shell ShellExecutor) Executor {
	return &executor{
		shell: shell,
	}
}

// NewRealExecutor creates an executor that spawns real processes
func NewRealExecutor() Executor {
	return NewExecutor(NewRealShellExecutor(nil))
}

// Run executes a single command synchronously.
func (e *executor) Run(ctx context.Context, cmd Command) error {
	result, err := e.shell.Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", commandLine(cmd), err)
	}

	if result.Success() {
		return nil
	}

	if !utf8.Valid(result.Stderr) {
		return fmt.Errorf("%s exited with status %d: %w",
			commandLine(cmd), result.ExitCode, errors.ErrNonTextDiagnostic)
	}

	return errors.CommandFailed(cmd.Subcommand(), string(result.Stderr))
}

func commandLine(cmd Command) string {
	return strings.Join(append([]string{cmd.Name}, cmd.Args...), " ")
}
