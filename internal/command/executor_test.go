package command

import (
	"context"
	stderrors "errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setup-gh/setup-gh/internal/errors"
)

func TestExecutor_Run(t *testing.T) {
	t.Run("should succeed on zero exit status", func(t *testing.T) {
		// Given: a shell that exits cleanly
		mockShell := &mockShellExecutor{}
		executor := NewExecutor(mockShell)

		// When: running a command
		err := executor.Run(context.Background(), GitAdd("."))

		// Then: no error and the command reached the shell unchanged
		assert.NoError(t, err)
		require.Len(t, mockShell.executedCommands, 1)
		assert.Equal(t, GitAdd("."), mockShell.executedCommands[0])
	})

	t.Run("should return CommandFailed on non-zero exit", func(t *testing.T) {
		// Given: a shell whose command exits with status 1
		mockShell := &mockShellExecutor{
			exitCode: 1,
			stderr:   []byte("nothing to commit, working tree clean\n"),
		}
		executor := NewExecutor(mockShell)

		// When: running a commit
		err := executor.Run(context.Background(), GitCommit("init"))

		// Then: the error carries the subcommand and raw stderr
		require.Error(t, err)
		var failed *errors.CommandFailedError
		require.True(t, stderrors.As(err, &failed))
		assert.Equal(t, "commit", failed.Subcommand)
		assert.Equal(t, "nothing to commit, working tree clean\n", failed.Diagnostic)
	})

	t.Run("should fail when diagnostic is not text", func(t *testing.T) {
		// Given: a failing command that wrote invalid UTF-8 to stderr
		mockShell := &mockShellExecutor{
			exitCode: 128,
			stderr:   []byte{0xff, 0xfe, 0xfd},
		}
		executor := NewExecutor(mockShell)

		// When: running it
		err := executor.Run(context.Background(), GitPushUpstream("origin", "main"))

		// Then: the decoding failure is reported instead of CommandFailed
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNonTextDiagnostic)
		assert.False(t, errors.IsCommandFailed(err))
	})

	t.Run("should propagate launch failures", func(t *testing.T) {
		// Given: a shell that cannot start the process
		launchErr := stderrors.New("exec: \"git\": executable file not found in $PATH")
		mockShell := &mockShellExecutor{launchErr: launchErr}
		executor := NewExecutor(mockShell)

		// When: running a command
		err := executor.Run(context.Background(), GitAdd("."))

		// Then: the underlying error is wrapped, not translated
		require.Error(t, err)
		assert.ErrorIs(t, err, launchErr)
		assert.False(t, errors.IsCommandFailed(err))
		assert.Contains(t, err.Error(), "git add .")
	})

	t.Run("should pass working directory through", func(t *testing.T) {
		// Given: a command bound to a directory
		mockShell := &mockShellExecutor{}
		executor := NewExecutor(mockShell)

		// When: running it
		err := executor.Run(context.Background(), InDir(GitAdd("."), "/path/to/repo"))

		// Then: the shell sees the directory
		require.NoError(t, err)
		assert.Equal(t, "/path/to/repo", mockShell.executedCommands[0].WorkDir)
	})
}

func TestCommand_Subcommand(t *testing.T) {
	assert.Equal(t, "push", GitPushUpstream("origin", "main").Subcommand())
	assert.Equal(t, "", Command{Name: "git"}.Subcommand())
}

// Test command builder functions
func TestCommandBuilder(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected []string
	}{
		{
			name:     "git add",
			cmd:      GitAdd("src/"),
			expected: []string{"add", "src/"},
		},
		{
			name:     "git commit keeps message as one argument",
			cmd:      GitCommit("first commit; rm -rf /"),
			expected: []string{"commit", "-m", "first commit; rm -rf /"},
		},
		{
			name:     "git branch rename",
			cmd:      GitBranchRename("main"),
			expected: []string{"branch", "-M", "main"},
		},
		{
			name:     "git remote add",
			cmd:      GitRemoteAdd("origin", "git@github.com:octocat/hello.git"),
			expected: []string{"remote", "add", "origin", "git@github.com:octocat/hello.git"},
		},
		{
			name:     "git push with upstream",
			cmd:      GitPushUpstream("origin", "master"),
			expected: []string{"push", "-u", "origin", "master"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "git", tt.cmd.Name)
			assert.Equal(t, tt.expected, tt.cmd.Args)
			assert.Empty(t, tt.cmd.WorkDir)
		})
	}
}

// Test real shell executor functions
func TestRealShellExecutor(t *testing.T) {
	requireBinary(t, "sh")

	t.Run("should create real shell executor", func(t *testing.T) {
		shell := NewRealShellExecutor(nil)

		assert.NotNil(t, shell)
		assert.Implements(t, (*ShellExecutor)(nil), shell)
	})

	t.Run("should capture stdout on success", func(t *testing.T) {
		shell := NewRealShellExecutor(nil)

		result, err := shell.Execute(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", "printf 'test output'"},
		})

		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, "test output", string(result.Stdout))
	})

	t.Run("should report exit code and stderr without error", func(t *testing.T) {
		shell := NewRealShellExecutor(nil)

		result, err := shell.Execute(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", "echo boom >&2; exit 3"},
		})

		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "boom\n", string(result.Stderr))
	})

	t.Run("should honour working directory", func(t *testing.T) {
		shell := NewRealShellExecutor(nil)
		dir := t.TempDir()

		result, err := shell.Execute(context.Background(), Command{
			Name:    "sh",
			Args:    []string{"-c", "pwd"},
			WorkDir: dir,
		})

		require.NoError(t, err)
		assert.Contains(t, string(result.Stdout), filepath.Base(dir))
	})

	t.Run("should return error when binary is missing", func(t *testing.T) {
		shell := NewRealShellExecutor(nil)

		_, err := shell.Execute(context.Background(), Command{Name: "nonexistent-command-xyz"})

		assert.Error(t, err)
	})
}

func TestRealExecutor(t *testing.T) {
	requireBinary(t, "sh")

	t.Run("should translate real non-zero exit", func(t *testing.T) {
		executor := NewRealExecutor()

		err := executor.Run(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", "echo 'fatal: denied' >&2; exit 1"},
		})

		var failed *errors.CommandFailedError
		require.True(t, stderrors.As(err, &failed))
		assert.Equal(t, "-c", failed.Subcommand)
		assert.Equal(t, "fatal: denied\n", failed.Diagnostic)
	})
}

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

// Mock implementation for testing
type mockShellExecutor struct {
	executedCommands []Command
	exitCode         int
	stderr           []byte
	launchErr        error
}

func (m *mockShellExecutor) Execute(_ context.Context, cmd Command) (Result, error) {
	m.executedCommands = append(m.executedCommands, cmd)
	if m.launchErr != nil {
		return Result{Command: cmd}, m.launchErr
	}
	return Result{
		Command:  cmd,
		ExitCode: m.exitCode,
		Stderr:   m.stderr,
	}, nil
}
