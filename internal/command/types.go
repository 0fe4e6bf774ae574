package command

import "context"

// Command represents an external command to be executed
type Command struct {
	Name    string   // Command name (e.g., "git")
	Args    []string // Command arguments
	WorkDir string   // Optional working directory
}

// Subcommand returns the first argument, e.g. "push" for "git push -u origin main".
func (c Command) Subcommand() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Result represents the outcome of a process that was started successfully
type Result struct {
	Command  Command
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// ShellExecutor abstracts the actual process execution.
// A non-zero exit is reported through Result, not as an error; the error
// return is reserved for processes that could not be started at all.
type ShellExecutor interface {
	Execute(ctx context.Context, cmd Command) (Result, error)
}

// Executor runs a command and turns a failing exit status into a typed error.
type Executor interface {
	Run(ctx context.Context, cmd Command) error
}
