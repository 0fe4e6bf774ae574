package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"go.uber.org/zap"
)

// realShellExecutor implements ShellExecutor using os/exec
type realShellExecutor struct {
	logger *zap.Logger
}

// NewRealShellExecutor creates a new shell executor that executes real commands
func NewRealShellExecutor(logger *zap.Logger) ShellExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &realShellExecutor{logger: logger}
}

// Execute runs the command and waits for it to finish
func (s *realShellExecutor) Execute(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.WorkDir != "" {
		c.Dir = cmd.WorkDir
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	s.logger.Debug("Running command",
		zap.String("command", cmd.Name),
		zap.Strings("args", cmd.Args),
		zap.String("dir", cmd.WorkDir))

	err := c.Run()

	result := Result{
		Command: cmd,
		Stdout:  stdout.Bytes(),
		Stderr:  stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		err = nil
	}
	if err != nil {
		s.logger.Debug("Command could not be started",
			zap.String("command", cmd.Name),
			zap.Error(err))
		return result, err
	}

	s.logger.Debug("Command finished",
		zap.String("command", cmd.Name),
		zap.Int("exit_code", result.ExitCode),
		zap.Int("stdout_bytes", len(result.Stdout)),
		zap.Int("stderr_bytes", len(result.Stderr)))

	return result, nil
}
