package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonTextDiagnostic is returned when a failing command wrote bytes to
// stderr that are not valid UTF-8 text.
var ErrNonTextDiagnostic = errors.New("command diagnostic output is not valid text")

// CommandFailedError reports a git invocation that exited with a non-zero status.
type CommandFailedError struct {
	Subcommand string
	Diagnostic string // git's stderr, unmodified
}

func (e *CommandFailedError) Error() string {
	diagnostic := strings.TrimSpace(e.Diagnostic)
	if diagnostic == "" {
		diagnostic = "no additional details available"
	}
	return fmt.Sprintf("git %s failed: %s", e.Subcommand, diagnostic)
}

// InvalidOriginError reports an origin address that is not a GitHub ssh remote.
type InvalidOriginError struct {
	Address string
}

func (e *InvalidOriginError) Error() string {
	return fmt.Sprintf(
		"invalid origin: %s (expected git@github.com:<owner>/<repo>.git, use --no-check to skip)",
		e.Address,
	)
}

// CommandFailed creates the error for a git subcommand that exited non-zero.
func CommandFailed(subcommand, diagnostic string) error {
	return &CommandFailedError{Subcommand: subcommand, Diagnostic: diagnostic}
}

// InvalidOrigin creates the error for an origin that failed validation.
func InvalidOrigin(address string) error {
	return &InvalidOriginError{Address: address}
}

// IsCommandFailed reports whether err wraps a CommandFailedError.
func IsCommandFailed(err error) bool {
	var target *CommandFailedError
	return errors.As(err, &target)
}

// IsInvalidOrigin reports whether err wraps an InvalidOriginError.
func IsInvalidOrigin(err error) bool {
	var target *InvalidOriginError
	return errors.As(err, &target)
}

// Configuration Errors
func ConfigLoadFailed(configPath string, cause error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	causeStr := cause.Error()
	if strings.Contains(causeStr, "yaml") || strings.Contains(causeStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Remove the file to fall back to built-in defaults`
	} else if strings.Contains(causeStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions of the configuration file`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", cause)
	return &wrappedError{msg: msg, cause: cause}
}

type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string { return e.msg }

func (e *wrappedError) Unwrap() error { return e.cause }

// Validation Errors
func OriginRequired() error {
	msg := `origin is required

Usage: setup-gh [options] <origin>

Examples:
  • setup-gh git@github.com:octocat/hello-world.git
  • setup-gh -c "first commit" git@github.com:octocat/hello-world.git
  • setup-gh --master git@github.com:octocat/hello-world.git`
	return errors.New(msg)
}
